package pets

import "time"

// Species define las especies que atiende la tienda.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// SizeTier es el porte derivado del peso; es una dimensión de precio.
// @Enum small, medium, large
type SizeTier string

const (
	SizeSmall  SizeTier = "small"
	SizeMedium SizeTier = "medium"
	SizeLarge  SizeTier = "large"
)

// Pet pertenece a exactamente un cliente (OwnerTaxID).
// Size se recalcula siempre que cambia Weight.
type Pet struct {
	ID         string
	OwnerTaxID string

	Name    string
	Species Species
	Weight  float64 // kg
	Size    SizeTier

	BirthDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot es la copia congelada que guarda un turno.
// No apunta al Pet vivo, así borrar la mascota no deja referencias colgando.
type Snapshot struct {
	PetID      string
	OwnerTaxID string
	Name       string
	Species    Species
	Size       SizeTier
}

func (p Pet) Snapshot() Snapshot {
	return Snapshot{
		PetID:      p.ID,
		OwnerTaxID: p.OwnerTaxID,
		Name:       p.Name,
		Species:    p.Species,
		Size:       p.Size,
	}
}
