package appointments

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/juju/errors"

	"pet-grooming-shop/internal/domain/finance"
	"pet-grooming-shop/internal/domain/pets"
	"pet-grooming-shop/internal/domain/schedule"
	"pet-grooming-shop/internal/platform/httpx"
	"pet-grooming-shop/internal/platform/logger"
	"pet-grooming-shop/internal/platform/metrics"
)

// RegisterRoutes monta reservas. ledger se usa solo para reflejar el saldo en métricas.
func RegisterRoutes(r chi.Router, svc *Service, ledger *finance.Ledger, log logger.Logger, m *metrics.Collector, loc *time.Location) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", bookHandler(svc, ledger, log, m, loc))
		ar.Get("/", listHandler(svc, log))
	})
}

type bookRequest struct {
	TaxID   string `json:"tax_id" validate:"required" example:"123.456.789-01"`
	PetID   string `json:"pet_id" validate:"required"`
	Date    string `json:"date" validate:"required" example:"2030-01-07"` // YYYY-MM-DD
	Time    string `json:"time" validate:"required" example:"10:00"`      // HH:MM
	Service string `json:"service" validate:"required" example:"Bath"`
}

type petSnapshotResponse struct {
	ID         string        `json:"id"`
	OwnerTaxID string        `json:"owner_tax_id"`
	Name       string        `json:"name"`
	Species    pets.Species  `json:"species"`
	Size       pets.SizeTier `json:"size"`
}

type appointmentResponse struct {
	ID              string              `json:"id"`
	Pet             petSnapshotResponse `json:"pet"`
	At              time.Time           `json:"at"`
	EndsAt          time.Time           `json:"ends_at"`
	Service         string              `json:"service"`
	Price           float64             `json:"price"`
	DurationMinutes int                 `json:"duration_minutes"`
	BookedAt        time.Time           `json:"booked_at"`
}

// bookHandler godoc
// @Summary Reservar turno
// @Description Valida horario (no en el pasado, dentro del horario de atención) y servicio; el precio sale del porte actual de la mascota y se acredita en el registro financiero. date y time se interpretan en la zona horaria de la tienda.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body bookRequest true "Turno a reservar"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} httpx.ErrorResponse "turno en el pasado, fuera de horario o servicio desconocido"
// @Failure 404 {object} httpx.ErrorResponse "cliente o mascota no encontrados"
// @Failure 422 {object} httpx.ErrorResponse "validación"
// @Router /appointments [post]
func bookHandler(svc *Service, ledger *finance.Ledger, log logger.Logger, m *metrics.Collector, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookRequest
		if !httpx.Bind(w, r, &req) {
			return
		}

		date, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(req.Date), loc)
		if err != nil {
			m.BookingRejected("invalid")
			httpx.Fail(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		clock, err := schedule.ParseClock(strings.TrimSpace(req.Time))
		if err != nil {
			m.BookingRejected("invalid")
			httpx.Error(w, r, log, err)
			return
		}

		a, err := svc.Book(r.Context(), BookInput{
			TaxID:   req.TaxID,
			PetID:   req.PetID,
			At:      schedule.At(date, clock, loc),
			Service: req.Service,
		})
		if err != nil {
			m.BookingRejected(rejectReason(err))
			httpx.Error(w, r, log, err)
			return
		}

		m.AppointmentBooked(a.Service)
		rec := ledger.Record()
		m.SetFinance(rec.Revenue, rec.Expenses, rec.ServiceCount)

		log.Info("appointment booked", map[string]any{
			"appointment_id": a.ID,
			"pet_id":         a.Pet.PetID,
			"service":        a.Service,
			"price":          a.Price,
			"at":             a.At.Format(time.RFC3339),
		})
		httpx.JSON(w, r, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listHandler: ?pet_id= filtra por mascota.
func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Appointment
			err   error
		)
		if petID := strings.TrimSpace(r.URL.Query().Get("pet_id")); petID != "" {
			items, err = svc.ListByPet(r.Context(), petID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			httpx.Error(w, r, log, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, schedule.ErrSlotInPast):
		return "past"
	case errors.Is(err, schedule.ErrOutsideBusinessHours):
		return "closed"
	case errors.Is(err, errors.NotFound):
		return "not_found"
	case errors.Is(err, errors.NotValid):
		return "invalid"
	default:
		return "error"
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID: a.ID,
		Pet: petSnapshotResponse{
			ID:         a.Pet.PetID,
			OwnerTaxID: a.Pet.OwnerTaxID,
			Name:       a.Pet.Name,
			Species:    a.Pet.Species,
			Size:       a.Pet.Size,
		},
		At:              a.At,
		EndsAt:          a.End(),
		Service:         a.Service,
		Price:           a.Price,
		DurationMinutes: a.Duration,
		BookedAt:        a.BookedAt,
	}
}
