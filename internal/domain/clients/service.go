package clients

import (
	"context"
	"strings"
	"time"

	"github.com/juju/errors"

	"pet-grooming-shop/internal/domain/pets"
)

type Service struct {
	repo Repository
	pets *pets.Service
	now  func() time.Time
}

func NewService(repo Repository, petsSvc *pets.Service) *Service {
	return &Service{
		repo: repo,
		pets: petsSvc,
		now:  time.Now,
	}
}

type RegisterInput struct {
	TaxID   string
	Name    string
	Phone   string
	Address string
}

// RegisterOrFetch busca por TaxID normalizado. Si existe lo devuelve tal cual
// (ignora nombre/teléfono/dirección nuevos); si no, valida todo y lo crea.
// created indica cuál de los dos pasó.
func (s *Service) RegisterOrFetch(ctx context.Context, in RegisterInput) (Client, bool, error) {
	taxID, err := NormalizeTaxID(in.TaxID)
	if err != nil {
		return Client{}, false, err
	}

	existing, err := s.Get(ctx, taxID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errors.NotFound) {
		return Client{}, false, err
	}

	c := Client{
		TaxID:     taxID,
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Pets:      []pets.Pet{},
		CreatedAt: s.now(),
	}
	if c.Name == "" {
		return Client{}, false, errors.NotValidf("empty client name")
	}
	if c.Phone == "" {
		return Client{}, false, errors.NotValidf("empty phone")
	}
	if c.Address == "" {
		return Client{}, false, errors.NotValidf("empty address")
	}

	if err := s.repo.Create(ctx, c); err != nil {
		// Otro request lo creó entre el Get y el Create.
		if errors.Is(err, errors.AlreadyExists) {
			existing, err := s.Get(ctx, taxID)
			return existing, false, err
		}
		return Client{}, false, errors.Annotate(err, "create client")
	}
	return c, true, nil
}

// Get acepta el TaxID con o sin puntuación.
func (s *Service) Get(ctx context.Context, taxID string) (Client, error) {
	id, err := NormalizeTaxID(taxID)
	if err != nil {
		return Client{}, err
	}

	c, err := s.repo.GetByTaxID(ctx, id)
	if err != nil {
		return Client{}, err
	}
	if c.Pets, err = s.pets.ListByOwner(ctx, c.TaxID); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Pets, err = s.pets.ListByOwner(ctx, items[i].TaxID); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// AddPet agrega una mascota al final de la lista del cliente.
func (s *Service) AddPet(ctx context.Context, taxID string, in pets.CreateInput) (pets.Pet, error) {
	c, err := s.Get(ctx, taxID)
	if err != nil {
		return pets.Pet{}, err
	}
	return s.pets.Create(ctx, c.TaxID, in)
}

func (s *Service) UpdatePet(ctx context.Context, taxID, petID string, in pets.UpdateInput) (pets.Pet, error) {
	c, err := s.Get(ctx, taxID)
	if err != nil {
		return pets.Pet{}, err
	}
	return s.pets.Update(ctx, c.TaxID, petID, in)
}

// FindPet es lo que usa appointments para resolver la mascota a atender.
func (s *Service) FindPet(ctx context.Context, taxID, petID string) (pets.Pet, error) {
	id, err := NormalizeTaxID(taxID)
	if err != nil {
		return pets.Pet{}, err
	}
	if _, err := s.repo.GetByTaxID(ctx, id); err != nil {
		return pets.Pet{}, err
	}
	return s.pets.GetByID(ctx, id, petID)
}

// RemovePet devuelve cuántas mascotas le quedan al cliente.
// Con 0 el cliente NO se borra: lo decide el caller.
func (s *Service) RemovePet(ctx context.Context, taxID, petID string) (int, error) {
	c, err := s.Get(ctx, taxID)
	if err != nil {
		return 0, err
	}
	if err := s.pets.Delete(ctx, c.TaxID, petID); err != nil {
		return 0, err
	}
	return len(c.Pets) - 1, nil
}

// RemoveClient borra el cliente y en cascada todas sus mascotas.
func (s *Service) RemoveClient(ctx context.Context, taxID string) error {
	id, err := NormalizeTaxID(taxID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.pets.DeleteByOwner(ctx, id); err != nil {
		return errors.Annotatef(err, "remove pets of %s", id)
	}
	return nil
}
