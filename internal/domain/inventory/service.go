package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
)

type Service struct {
	repo Repository
	now  func() time.Time

	// serializa leer-modificar-guardar sobre un producto
	mu sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Code     int
	Name     string
	Category string
	Price    float64
	Stock    int
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Product, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)

	if name == "" {
		return Product{}, errors.NotValidf("empty product name")
	}
	if !validPrice(in.Price) {
		return Product{}, errors.NotValidf("price %v (must be greater than zero)", in.Price)
	}
	if in.Stock < 0 {
		return Product{}, errors.NotValidf("stock %d (negative)", in.Stock)
	}
	if category == "" {
		return Product{}, errors.NotValidf("empty category")
	}
	if in.Code <= 0 {
		return Product{}, errors.NotValidf("product code %d (must be positive)", in.Code)
	}

	now := s.now()
	p := Product{
		Code:      in.Code,
		Name:      name,
		Category:  category,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, errors.AlreadyExists) {
			return Product{}, errors.NotValidf("product code %d (already registered)", in.Code)
		}
		return Product{}, errors.Annotate(err, "create product")
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, code int) (Product, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) AddStock(ctx context.Context, code, qty int) (Outcome, error) {
	return s.mutate(ctx, code, func(p *Product) Outcome {
		if qty <= 0 {
			return refuse(*p, "invalid quantity: must be positive")
		}
		if qty > math.MaxInt-p.Stock {
			return refuse(*p, "invalid quantity: stock would overflow")
		}
		p.Stock += qty
		return accept(*p, fmt.Sprintf("stock updated: new total %d", p.Stock))
	})
}

// RemoveStock nunca deja el stock negativo.
func (s *Service) RemoveStock(ctx context.Context, code, qty int) (Outcome, error) {
	return s.mutate(ctx, code, func(p *Product) Outcome {
		if qty <= 0 || qty > p.Stock {
			return refuse(*p, "insufficient stock or invalid quantity")
		}
		p.Stock -= qty
		return accept(*p, fmt.Sprintf("stock updated: new total %d", p.Stock))
	})
}

// AdjustStock despacha a AddStock/RemoveStock según la dirección.
func (s *Service) AdjustStock(ctx context.Context, code, qty int, dir Direction) (Outcome, error) {
	switch dir {
	case DirectionIn:
		return s.AddStock(ctx, code, qty)
	case DirectionOut:
		return s.RemoveStock(ctx, code, qty)
	default:
		p, err := s.repo.GetByCode(ctx, code)
		if err != nil {
			return Outcome{}, err
		}
		return refuse(p, fmt.Sprintf("invalid direction %q: use in or out", dir)), nil
	}
}

// ApplyDiscount: 0 < percent <= 100, precio *= (1 - percent/100).
func (s *Service) ApplyDiscount(ctx context.Context, code int, percent float64) (Outcome, error) {
	return s.mutate(ctx, code, func(p *Product) Outcome {
		if math.IsNaN(percent) || percent <= 0 || percent > 100 {
			return refuse(*p, "invalid discount: must be between 1% and 100%")
		}
		p.Price *= 1 - percent/100
		return accept(*p, fmt.Sprintf("new discounted price: %.2f", p.Price))
	})
}

func (s *Service) SetPrice(ctx context.Context, code int, price float64) (Outcome, error) {
	return s.mutate(ctx, code, func(p *Product) Outcome {
		if !validPrice(price) {
			return refuse(*p, "invalid price: must be greater than zero")
		}
		p.Price = price
		return accept(*p, fmt.Sprintf("price adjusted: %.2f", p.Price))
	})
}

// HasSufficientStock no modifica nada.
func (s *Service) HasSufficientStock(ctx context.Context, code, qty int) (bool, error) {
	p, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return false, err
	}
	return qty > 0 && p.Stock >= qty, nil
}

// mutate aplica fn sobre una copia y solo guarda si el Outcome es OK.
func (s *Service) mutate(ctx context.Context, code int, fn func(p *Product) Outcome) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return Outcome{}, err
	}

	out := fn(&p)
	if !out.OK {
		return out, nil
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Outcome{}, errors.Annotatef(err, "update product %d", code)
	}
	return out, nil
}

func accept(p Product, msg string) Outcome {
	return Outcome{OK: true, Message: msg, Stock: p.Stock, Price: p.Price}
}

func refuse(p Product, msg string) Outcome {
	return Outcome{OK: false, Message: msg, Stock: p.Stock, Price: p.Price}
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
