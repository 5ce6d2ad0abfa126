package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/juju/errors"

	"pet-grooming-shop/internal/domain/appointments"
)

type appointmentRepo struct {
	mu    sync.RWMutex
	items []appointments.Appointment
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{}
}

func (r *appointmentRepo) Append(ctx context.Context, a appointments.Appointment) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, a)
	return nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}
