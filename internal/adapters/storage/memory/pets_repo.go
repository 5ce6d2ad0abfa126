package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/juju/errors"

	"pet-grooming-shop/internal/domain/pets"
)

// petRepo guarda las mascotas por dueño en slices para conservar el orden de alta.
type petRepo struct {
	mu      sync.RWMutex
	byOwner map[string][]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byOwner: make(map[string][]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if indexOf(r.byOwner[p.OwnerTaxID], p.ID) >= 0 {
		return errors.AlreadyExistsf("pet %q", p.ID)
	}
	r.byOwner[p.OwnerTaxID] = append(r.byOwner[p.OwnerTaxID], p)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byOwner[p.OwnerTaxID]
	i := indexOf(items, p.ID)
	if i < 0 {
		return errors.NotFoundf("pet %q", p.ID)
	}
	items[i] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, ownerTaxID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byOwner[ownerTaxID]
	i := indexOf(items, id)
	if i < 0 {
		return errors.NotFoundf("pet %q", id)
	}

	out := make([]pets.Pet, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	r.byOwner[ownerTaxID] = out
	return nil
}

func (r *petRepo) DeleteByOwner(ctx context.Context, ownerTaxID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.byOwner[ownerTaxID])
	delete(r.byOwner, ownerTaxID)
	return n, nil
}

func (r *petRepo) GetByID(ctx context.Context, ownerTaxID, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byOwner[ownerTaxID]
	i := indexOf(items, id)
	if i < 0 {
		return pets.Pet{}, errors.NotFoundf("pet %q", id)
	}
	return items[i], nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerTaxID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byOwner[ownerTaxID]
	out := make([]pets.Pet, len(items))
	copy(out, items)
	return out, nil
}

func indexOf(items []pets.Pet, id string) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
