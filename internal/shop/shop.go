// Package shop arma el contexto de la tienda: cada colección y servicio vive acá
// y se pasa explícitamente a quien lo necesite.
package shop

import (
	"strings"
	"time"

	"github.com/juju/errors"

	mem "pet-grooming-shop/internal/adapters/storage/memory"
	"pet-grooming-shop/internal/domain/appointments"
	"pet-grooming-shop/internal/domain/clients"
	"pet-grooming-shop/internal/domain/finance"
	"pet-grooming-shop/internal/domain/inventory"
	"pet-grooming-shop/internal/domain/pets"
)

type Options struct {
	// Método de pago inicial del registro financiero. Default "undefined".
	PaymentMethod string
	// Zona horaria en la que se interpretan fechas y horas de turnos. Default time.Local.
	Location *time.Location
}

type Shop struct {
	Location *time.Location

	Pets         *pets.Service
	Clients      *clients.Service
	Appointments *appointments.Service
	Ledger       *finance.Ledger
	Inventory    *inventory.Service
}

// New crea una tienda vacía con repos in-memory.
func New(opts Options) (*Shop, error) {
	method := strings.TrimSpace(opts.PaymentMethod)
	if method == "" {
		method = "undefined"
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	ledger, err := finance.NewLedger(method)
	if err != nil {
		return nil, errors.Annotate(err, "financial record")
	}

	petsSvc := pets.NewService(mem.NewPetRepo())
	clientsSvc := clients.NewService(mem.NewClientRepo(), petsSvc)

	return &Shop{
		Location:     loc,
		Pets:         petsSvc,
		Clients:      clientsSvc,
		Appointments: appointments.NewService(mem.NewAppointmentRepo(), clientsSvc, ledger),
		Ledger:       ledger,
		Inventory:    inventory.NewService(mem.NewProductRepo()),
	}, nil
}
