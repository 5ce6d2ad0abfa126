package appointments

import "context"

// Repository es append-only: no hay update ni delete.
type Repository interface {
	Append(ctx context.Context, a Appointment) error
	List(ctx context.Context) ([]Appointment, error)
}
