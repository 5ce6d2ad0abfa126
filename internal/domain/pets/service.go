package pets

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/juju/errors"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Weight    float64
	BirthDate time.Time
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name      *string
	Species   *string
	Weight    *float64
	BirthDate *time.Time
}

// ParseSpecies acepta dog/cat sin distinguir mayúsculas (y los alias cachorro/gato).
func ParseSpecies(s string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dog", "cachorro":
		return SpeciesDog, nil
	case "cat", "gato":
		return SpeciesCat, nil
	default:
		return "", errors.NotValidf("species %q (only dog or cat)", s)
	}
}

// Create valida los campos, deriva el porte y da de alta la mascota al final de la lista del dueño.
// La existencia del dueño la garantiza el caller (clients.Service).
func (s *Service) Create(ctx context.Context, ownerTaxID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerTaxID) == "" {
		return Pet{}, errors.NotValidf("empty owner")
	}

	now := s.now()
	name, err := validateName(in.Name)
	if err != nil {
		return Pet{}, err
	}
	species, err := ParseSpecies(in.Species)
	if err != nil {
		return Pet{}, err
	}
	if err := validateWeight(in.Weight); err != nil {
		return Pet{}, err
	}
	if err := validateBirthDate(in.BirthDate, now); err != nil {
		return Pet{}, err
	}

	p := Pet{
		ID:         uuid.NewString(),
		OwnerTaxID: ownerTaxID,
		Name:       name,
		Species:    species,
		Weight:     in.Weight,
		Size:       ClassifySize(in.Weight),
		BirthDate:  in.BirthDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, errors.Annotate(err, "create pet")
	}
	return p, nil
}

// Update aplica una edición parcial; si cambia el peso se recalcula el porte.
// Es todo o nada: si un campo es inválido no se toca nada.
func (s *Service) Update(ctx context.Context, ownerTaxID, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, ownerTaxID, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		name, err := validateName(*in.Name)
		if err != nil {
			return Pet{}, err
		}
		p.Name = name
	}
	if in.Species != nil {
		species, err := ParseSpecies(*in.Species)
		if err != nil {
			return Pet{}, err
		}
		p.Species = species
	}
	if in.Weight != nil {
		if err := validateWeight(*in.Weight); err != nil {
			return Pet{}, err
		}
		p.Weight = *in.Weight
	}
	now := s.now()
	if in.BirthDate != nil {
		if err := validateBirthDate(*in.BirthDate, now); err != nil {
			return Pet{}, err
		}
		p.BirthDate = *in.BirthDate
	}

	p.Size = ClassifySize(p.Weight)
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, errors.Annotate(err, "update pet")
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, ownerTaxID, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, ownerTaxID, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return Pet{}, errors.NotFoundf("pet %q", id)
		}
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerTaxID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerTaxID)
}

// Delete borra una mascota. Los turnos guardan un Snapshot, así que no quedan colgados.
func (s *Service) Delete(ctx context.Context, ownerTaxID, id string) error {
	if err := s.repo.Delete(ctx, ownerTaxID, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotFoundf("pet %q", id)
		}
		return err
	}
	return nil
}

// DeleteByOwner es el cascade de clients.RemoveClient.
func (s *Service) DeleteByOwner(ctx context.Context, ownerTaxID string) (int, error) {
	return s.repo.DeleteByOwner(ctx, ownerTaxID)
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NotValidf("empty pet name")
	}
	return name, nil
}

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return errors.NotValidf("weight %v (must be greater than zero)", w)
	}
	return nil
}

func validateBirthDate(d, now time.Time) error {
	if d.IsZero() {
		return errors.NotValidf("empty birth date")
	}
	if dateOnly(d).After(dateOnly(now.In(d.Location()))) {
		return errors.NotValidf("birth date %s in the future", d.Format(time.DateOnly))
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
