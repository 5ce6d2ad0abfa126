package inventory

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-grooming-shop/internal/platform/httpx"
	"pet-grooming-shop/internal/platform/logger"
	"pet-grooming-shop/internal/platform/metrics"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, m *metrics.Collector) {
	r.Route("/products", func(pr chi.Router) {
		pr.Post("/", registerProductHandler(svc, log, m))
		pr.Get("/", listProductsHandler(svc, log))
		pr.Get("/{code}", getProductHandler(svc, log))
		pr.Get("/{code}/availability", availabilityHandler(svc, log))

		pr.Post("/{code}/stock", stockHandler(svc, log, m))
		pr.Post("/{code}/discount", discountHandler(svc, log, m))
		pr.Put("/{code}/price", priceHandler(svc, log, m))
	})
}

type registerProductRequest struct {
	Code     int     `json:"code" validate:"gt=0" example:"7"`
	Name     string  `json:"name" validate:"required" example:"Shampoo neutro"`
	Category string  `json:"category" validate:"required" example:"Higiene"`
	Price    float64 `json:"price" validate:"gt=0" example:"39.9"`
	Stock    int     `json:"stock" validate:"gte=0" example:"10"`
}

type stockRequest struct {
	Quantity  int       `json:"quantity" example:"3"`
	Direction Direction `json:"direction" validate:"required,oneof=in out" example:"in"`
}

type discountRequest struct {
	Percent float64 `json:"percent" example:"15"`
}

type priceRequest struct {
	Price float64 `json:"price" example:"42"`
}

type productResponse struct {
	Code      int       `json:"code"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type outcomeResponse struct {
	OK      bool    `json:"ok"`
	Message string  `json:"message"`
	Stock   int     `json:"stock"`
	Price   float64 `json:"price"`
}

type availabilityResponse struct {
	Code      int  `json:"code"`
	Quantity  int  `json:"quantity"`
	Available bool `json:"available"`
}

// registerProductHandler godoc
// @Summary Registrar producto
// @Description El código lo asigna quien registra y debe ser único.
// @Tags products
// @Accept json
// @Produce json
// @Param payload body registerProductRequest true "Producto"
// @Success 201 {object} productResponse
// @Failure 400 {object} httpx.ErrorResponse "reglas de negocio o código repetido"
// @Failure 422 {object} httpx.ErrorResponse "validación"
// @Router /products [post]
func registerProductHandler(svc *Service, log logger.Logger, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerProductRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		p, err := svc.Register(r.Context(), RegisterInput{
			Code:     req.Code,
			Name:     req.Name,
			Category: req.Category,
			Price:    req.Price,
			Stock:    req.Stock,
		})
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		m.SetStock(p.Code, p.Stock)
		httpx.JSON(w, r, http.StatusCreated, toProductResponse(p))
	}
}

func listProductsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProductResponse(p))
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}

func getProductHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := codeParam(w, r)
		if !ok {
			return
		}
		p, err := svc.Get(r.Context(), code)
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, toProductResponse(p))
	}
}

// availabilityHandler: ?quantity=N (default 1).
func availabilityHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := codeParam(w, r)
		if !ok {
			return
		}
		qty := 1
		if v := r.URL.Query().Get("quantity"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				httpx.Fail(w, r, http.StatusBadRequest, "quantity must be an integer")
				return
			}
			qty = n
		}

		available, err := svc.HasSufficientStock(r.Context(), code, qty)
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}
		httpx.JSON(w, r, http.StatusOK, availabilityResponse{Code: code, Quantity: qty, Available: available})
	}
}

// stockHandler godoc
// @Summary Entrada o salida de stock
// @Description direction=in suma, direction=out resta. Una salida mayor al stock se rechaza con 409 y el stock no cambia.
// @Tags products
// @Accept json
// @Produce json
// @Param code path int true "Código del producto"
// @Param payload body stockRequest true "Cantidad y dirección"
// @Success 200 {object} outcomeResponse
// @Failure 404 {object} httpx.ErrorResponse "producto no encontrado"
// @Failure 409 {object} outcomeResponse "rechazado"
// @Router /products/{code}/stock [post]
func stockHandler(svc *Service, log logger.Logger, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := codeParam(w, r)
		if !ok {
			return
		}
		var req stockRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		out, err := svc.AdjustStock(r.Context(), code, req.Quantity, req.Direction)
		writeOutcome(w, r, log, m, "stock_"+string(req.Direction), code, out, err)
	}
}

func discountHandler(svc *Service, log logger.Logger, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := codeParam(w, r)
		if !ok {
			return
		}
		var req discountRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		out, err := svc.ApplyDiscount(r.Context(), code, req.Percent)
		writeOutcome(w, r, log, m, "discount", code, out, err)
	}
}

func priceHandler(svc *Service, log logger.Logger, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := codeParam(w, r)
		if !ok {
			return
		}
		var req priceRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		out, err := svc.SetPrice(r.Context(), code, req.Price)
		writeOutcome(w, r, log, m, "price", code, out, err)
	}
}

// writeOutcome: rechazo = 409 con el Outcome en el cuerpo.
func writeOutcome(w http.ResponseWriter, r *http.Request, log logger.Logger, m *metrics.Collector, op string, code int, out Outcome, err error) {
	if err != nil {
		httpx.Error(w, r, log, err)
		return
	}

	resp := outcomeResponse{OK: out.OK, Message: out.Message, Stock: out.Stock, Price: out.Price}
	if !out.OK {
		m.InventoryRefused(op)
		httpx.JSON(w, r, http.StatusConflict, resp)
		return
	}
	m.SetStock(code, out.Stock)
	httpx.JSON(w, r, http.StatusOK, resp)
}

func codeParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "product code must be an integer")
		return 0, false
	}
	return code, true
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
