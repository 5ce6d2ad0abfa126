package middleware

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID devuelve el id que puso chimw.RequestID, o "" si no corrió.
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
