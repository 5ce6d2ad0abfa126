package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/juju/errors"

	"pet-grooming-shop/internal/domain/clients"
)

type clientRepo struct {
	mu      sync.RWMutex
	byTaxID map[string]clients.Client
	order   []string // orden de alta
}

func NewClientRepo() clients.Repository {
	return &clientRepo{
		byTaxID: make(map[string]clients.Client),
	}
}

// key compara sin distinguir mayúsculas sobre la forma canónica.
func key(taxID string) string {
	return strings.ToLower(strings.TrimSpace(taxID))
}

func (r *clientRepo) Create(ctx context.Context, c clients.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(c.TaxID)
	if k == "" {
		return errors.New("client tax id required")
	}
	if _, exists := r.byTaxID[k]; exists {
		return errors.AlreadyExistsf("client %s", c.TaxID)
	}
	c.Pets = nil
	r.byTaxID[k] = c
	r.order = append(r.order, k)
	return nil
}

func (r *clientRepo) GetByTaxID(ctx context.Context, taxID string) (clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byTaxID[key(taxID)]
	if !ok {
		return clients.Client{}, errors.NotFoundf("client %s", taxID)
	}
	return c, nil
}

func (r *clientRepo) List(ctx context.Context) ([]clients.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clients.Client, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byTaxID[k])
	}
	return out, nil
}

func (r *clientRepo) Delete(ctx context.Context, taxID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(taxID)
	if _, ok := r.byTaxID[k]; !ok {
		return errors.NotFoundf("client %s", taxID)
	}
	delete(r.byTaxID, k)
	for i, o := range r.order {
		if o == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
