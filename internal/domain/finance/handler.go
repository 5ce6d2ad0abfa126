package finance

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-grooming-shop/internal/platform/httpx"
	"pet-grooming-shop/internal/platform/logger"
	"pet-grooming-shop/internal/platform/metrics"
)

func RegisterRoutes(r chi.Router, ledger *Ledger, log logger.Logger, m *metrics.Collector, loc *time.Location) {
	r.Route("/finance", func(fr chi.Router) {
		fr.Get("/", summaryHandler(ledger))
		fr.Post("/expenses", expenseHandler(ledger, log, m))
		fr.Put("/payment-method", paymentMethodHandler(ledger, log))
		fr.Put("/record-date", recordDateHandler(ledger, log, loc))
		fr.Put("/revenue", revenueHandler(ledger, log, m))
		fr.Put("/service-count", serviceCountHandler(ledger, log, m))
	})
}

type amountRequest struct {
	Amount *float64 `json:"amount" validate:"required" example:"45.5"`
}

type paymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required" example:"pix"`
}

type recordDateRequest struct {
	RecordDate string `json:"record_date" validate:"required" example:"2025-03-10"` // YYYY-MM-DD
}

type serviceCountRequest struct {
	ServiceCount *int `json:"service_count" validate:"required"`
}

type summaryResponse struct {
	Revenue       float64 `json:"revenue"`
	ServiceCount  int     `json:"service_count"`
	PaymentMethod string  `json:"payment_method"`
	RecordDate    string  `json:"record_date"`
	Expenses      float64 `json:"expenses"`
	Balance       float64 `json:"balance"`
}

// summaryHandler godoc
// @Summary Resumen financiero
// @Description Ingresos, cantidad de servicios, gastos y saldo (ingresos - gastos).
// @Tags finance
// @Produce json
// @Success 200 {object} summaryResponse
// @Router /finance [get]
func summaryHandler(ledger *Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, r, http.StatusOK, toSummaryResponse(ledger.Summary()))
	}
}

// expenseHandler godoc
// @Summary Registrar gasto
// @Tags finance
// @Accept json
// @Produce json
// @Param payload body amountRequest true "Monto (>= 0)"
// @Success 200 {object} summaryResponse
// @Failure 400 {object} httpx.ErrorResponse "monto negativo"
// @Router /finance/expenses [post]
func expenseHandler(ledger *Ledger, log logger.Logger, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amountRequest
		if !httpx.Bind(w, r, &req) {
			return
		}
		if err := ledger.RecordExpense(*req.Amount); err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		respond(w, r, ledger, m)
	}
}

func paymentMethodHandler(ledger *Ledger, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paymentMethodRequest
		if !httpx.Bind(w, r, &req) {
			return
		}
		if err := ledger.SetPaymentMethod(req.PaymentMethod); err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toSummaryResponse(ledger.Summary()))
	}
}

func recordDateHandler(ledger *Ledger, log logger.Logger, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordDateRequest
		if !httpx.Bind(w, r, &req) {
			return
		}
		d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(req.RecordDate), loc)
		if err != nil {
			httpx.Fail(w, r, http.StatusBadRequest, "record_date must be YYYY-MM-DD")
			return
		}
		if err := ledger.SetRecordDate(d); err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toSummaryResponse(ledger.Summary()))
	}
}

// revenueHandler y serviceCountHandler son correcciones manuales del total.
func revenueHandler(ledger *Ledger, log logger.Logger, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amountRequest
		if !httpx.Bind(w, r, &req) {
			return
		}
		if err := ledger.SetRevenue(*req.Amount); err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		respond(w, r, ledger, m)
	}
}

func serviceCountHandler(ledger *Ledger, log logger.Logger, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req serviceCountRequest
		if !httpx.Bind(w, r, &req) {
			return
		}
		if err := ledger.SetServiceCount(*req.ServiceCount); err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		respond(w, r, ledger, m)
	}
}

func respond(w http.ResponseWriter, r *http.Request, ledger *Ledger, m *metrics.Collector) {
	s := ledger.Summary()
	m.SetFinance(s.Revenue, s.Expenses, s.ServiceCount)
	httpx.JSON(w, r, http.StatusOK, toSummaryResponse(s))
}

func toSummaryResponse(s Summary) summaryResponse {
	return summaryResponse{
		Revenue:       s.Revenue,
		ServiceCount:  s.ServiceCount,
		PaymentMethod: s.PaymentMethod,
		RecordDate:    s.RecordDate.Format(time.DateOnly),
		Expenses:      s.Expenses,
		Balance:       s.Balance,
	}
}
