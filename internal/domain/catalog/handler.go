package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-grooming-shop/internal/domain/pets"
	"pet-grooming-shop/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/services", listServicesHandler())
}

type serviceResponse struct {
	Name            string                    `json:"name" example:"Bath"`
	DurationMinutes int                       `json:"duration_minutes" example:"60"`
	Prices          map[pets.SizeTier]float64 `json:"prices"`
}

// listServicesHandler godoc
// @Summary Listar servicios
// @Description Servicios en orden fijo, con precio por porte y duración en minutos.
// @Tags catalog
// @Produce json
// @Success 200 {array} serviceResponse
// @Router /services [get]
func listServicesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := List()
		out := make([]serviceResponse, 0, len(items))
		for _, e := range items {
			out = append(out, serviceResponse{
				Name:            e.Name,
				DurationMinutes: e.Duration,
				Prices:          e.Prices,
			})
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}
