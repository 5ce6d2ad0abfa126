package appointments

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/juju/errors"

	"pet-grooming-shop/internal/domain/catalog"
	"pet-grooming-shop/internal/domain/pets"
	"pet-grooming-shop/internal/domain/schedule"
)

// PetFinder resuelve la mascota de un cliente (clients.Service).
type PetFinder interface {
	FindPet(ctx context.Context, taxID, petID string) (pets.Pet, error)
}

// Ledger es donde se acredita cada servicio reservado (finance.Ledger).
type Ledger interface {
	RecordService(amount float64) error
	RevertService(amount float64) error
}

type Service struct {
	repo   Repository
	pets   PetFinder
	ledger Ledger
	now    func() time.Time

	// historial + ledger se actualizan juntos
	mu sync.Mutex
}

func NewService(repo Repository, finder PetFinder, ledger Ledger) *Service {
	return &Service{
		repo:   repo,
		pets:   finder,
		ledger: ledger,
		now:    time.Now,
	}
}

type BookInput struct {
	TaxID   string
	PetID   string
	At      time.Time
	Service string
}

// Book reserva con el reloj del servicio.
func (s *Service) Book(ctx context.Context, in BookInput) (Appointment, error) {
	return s.BookAt(ctx, in, s.now())
}

// BookAt valida horario y servicio, congela el precio según el porte actual,
// acredita en el ledger y agrega al historial. Si algo falla no queda nada escrito.
func (s *Service) BookAt(ctx context.Context, in BookInput, now time.Time) (Appointment, error) {
	if in.At.IsZero() {
		return Appointment{}, errors.NotValidf("empty appointment time")
	}
	if err := schedule.Check(in.At, now); err != nil {
		return Appointment{}, err
	}

	name, ok := catalog.Lookup(strings.TrimSpace(in.Service))
	if !ok {
		return Appointment{}, errors.NotValidf("service %q", in.Service)
	}

	pet, err := s.pets.FindPet(ctx, in.TaxID, in.PetID)
	if err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:       uuid.NewString(),
		Pet:      pet.Snapshot(),
		At:       in.At,
		Service:  name,
		Price:    catalog.PriceOf(name, pet.Size),
		Duration: catalog.DurationOf(name),
		BookedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// primero el ledger: si rechaza el crédito no queda nada en el historial
	if err := s.ledger.RecordService(a.Price); err != nil {
		return Appointment{}, errors.Annotatef(err, "record service %s", a.ID)
	}
	if err := s.repo.Append(ctx, a); err != nil {
		if rerr := s.ledger.RevertService(a.Price); rerr != nil {
			return Appointment{}, errors.Annotatef(rerr, "revert service %s after append failure: %v", a.ID, err)
		}
		return Appointment{}, errors.Annotate(err, "append appointment")
	}
	return a, nil
}

// List devuelve el historial en orden de reserva.
func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Appointment, 0)
	for _, a := range all {
		if a.Pet.PetID == petID {
			out = append(out, a)
		}
	}
	return out, nil
}
