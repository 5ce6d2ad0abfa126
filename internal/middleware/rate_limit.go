package middleware

import (
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"pet-grooming-shop/internal/platform/logger"
)

// RateLimit aplica un token bucket global. rps <= 0 lo desactiva.
func RateLimit(log logger.Logger, rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests", map[string]any{
					"path":       r.URL.Path,
					"request_id": RequestID(r.Context()),
				})
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, map[string]string{"error": "too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
