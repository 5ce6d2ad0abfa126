package appointments

import (
	"time"

	"pet-grooming-shop/internal/domain/pets"
)

// Appointment es inmutable una vez reservado.
// Pet es una copia al momento de reservar: editar o borrar la mascota no lo cambia.
type Appointment struct {
	ID string

	Pet pets.Snapshot

	At       time.Time
	Service  string
	Price    float64
	Duration int // minutos

	BookedAt time.Time
}

// End es el fin estimado según la duración del servicio.
func (a Appointment) End() time.Time {
	return a.At.Add(time.Duration(a.Duration) * time.Minute)
}
