package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"

	"pet-grooming-shop/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer: loguea con nuestro logger y responde JSON.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"panic":      fmt.Sprint(rec),
					"path":       r.URL.Path,
					"request_id": RequestID(r.Context()),
					"stack":      string(debug.Stack()),
				})
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"error": "internal error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
