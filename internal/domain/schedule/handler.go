package schedule

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-grooming-shop/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router) {
	r.Get("/business-hours", businessHoursHandler())
}

type dayResponse struct {
	Weekday string `json:"weekday" example:"Saturday"`
	Open    bool   `json:"open"`
	From    string `json:"from,omitempty" example:"09:00"`
	To      string `json:"to,omitempty" example:"13:00"`
}

// semana de lunes a domingo
var week = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func businessHoursHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]dayResponse, 0, len(week))
		for _, d := range week {
			day := dayResponse{Weekday: d.String()}
			if win, ok := Hours(d); ok {
				day.Open = true
				day.From = win.Open.String()
				day.To = win.Close.String()
			}
			out = append(out, day)
		}
		httpx.JSON(w, r, http.StatusOK, out)
	}
}
