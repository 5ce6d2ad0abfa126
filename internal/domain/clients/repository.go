package clients

import "context"

// Repository guarda clientes por TaxID canónico. No guarda las mascotas (eso es pets.Repository).
type Repository interface {
	// Create devuelve un error AlreadyExists si el TaxID ya está.
	Create(ctx context.Context, c Client) error
	GetByTaxID(ctx context.Context, taxID string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	Delete(ctx context.Context, taxID string) error
}
