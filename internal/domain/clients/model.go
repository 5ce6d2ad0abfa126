package clients

import (
	"time"

	"pet-grooming-shop/internal/domain/pets"
)

// Client es el dueño; TaxID (CPF) canónico XXX.XXX.XXX-XX es la clave única.
// Pets se completa al leer, en orden de alta.
type Client struct {
	TaxID   string
	Name    string
	Phone   string
	Address string

	Pets []pets.Pet

	CreatedAt time.Time
}
