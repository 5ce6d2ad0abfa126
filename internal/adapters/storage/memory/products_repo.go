package memory

import (
	"context"
	"sync"

	"github.com/juju/errors"

	"pet-grooming-shop/internal/domain/inventory"
)

type productRepo struct {
	mu     sync.RWMutex
	byCode map[int]inventory.Product
	order  []int
}

func NewProductRepo() inventory.Repository {
	return &productRepo{
		byCode: make(map[int]inventory.Product),
	}
}

func (r *productRepo) Create(ctx context.Context, p inventory.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[p.Code]; exists {
		return errors.AlreadyExistsf("product %d", p.Code)
	}
	r.byCode[p.Code] = p
	r.order = append(r.order, p.Code)
	return nil
}

func (r *productRepo) Update(ctx context.Context, p inventory.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[p.Code]; !exists {
		return errors.NotFoundf("product %d", p.Code)
	}
	r.byCode[p.Code] = p
	return nil
}

func (r *productRepo) GetByCode(ctx context.Context, code int) (inventory.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byCode[code]
	if !ok {
		return inventory.Product{}, errors.NotFoundf("product %d", code)
	}
	return p, nil
}

func (r *productRepo) List(ctx context.Context) ([]inventory.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Product, 0, len(r.order))
	for _, c := range r.order {
		out = append(out, r.byCode[c])
	}
	return out, nil
}
