package inventory

import "context"

type Repository interface {
	// Create devuelve un error AlreadyExists si el código ya está.
	Create(ctx context.Context, p Product) error
	Update(ctx context.Context, p Product) error
	GetByCode(ctx context.Context, code int) (Product, error)
	List(ctx context.Context) ([]Product, error)
}
