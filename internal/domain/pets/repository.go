package pets

import "context"

// Repository guarda las mascotas por dueño, en orden de alta.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, ownerTaxID, id string) error
	DeleteByOwner(ctx context.Context, ownerTaxID string) (int, error)
	GetByID(ctx context.Context, ownerTaxID, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerTaxID string) ([]Pet, error)
}
