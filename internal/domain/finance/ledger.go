package finance

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
)

// Ledger acumula ingresos, cantidad de servicios y gastos.
// Todas las mutaciones validan antes de tocar el registro.
type Ledger struct {
	mu  sync.RWMutex
	rec Record
	now func() time.Time
}

// NewRecord valida los mismos invariantes que los setters.
func NewRecord(revenue float64, serviceCount int, paymentMethod string, recordDate, now time.Time) (Record, error) {
	if err := validateAmount("revenue", revenue); err != nil {
		return Record{}, err
	}
	if serviceCount < 0 {
		return Record{}, errors.NotValidf("service count %d (negative)", serviceCount)
	}
	method, err := validatePaymentMethod(paymentMethod)
	if err != nil {
		return Record{}, err
	}
	if err := validateRecordDate(recordDate, now); err != nil {
		return Record{}, err
	}
	return Record{
		Revenue:       revenue,
		ServiceCount:  serviceCount,
		PaymentMethod: method,
		RecordDate:    recordDate,
	}, nil
}

// NewLedger arranca en cero con el método de pago dado y la fecha de hoy.
func NewLedger(paymentMethod string) (*Ledger, error) {
	now := time.Now()
	rec, err := NewRecord(0, 0, paymentMethod, now, now)
	if err != nil {
		return nil, err
	}
	return &Ledger{rec: rec, now: time.Now}, nil
}

// RecordService suma un servicio realizado.
// Si el total o el contador se saldrían de rango no toca nada.
func (l *Ledger) RecordService(amount float64) error {
	if err := validateAmount("service amount", amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rec.ServiceCount == math.MaxInt {
		return errors.NotValidf("service count %d (at maximum)", l.rec.ServiceCount)
	}
	revenue, err := add("revenue", l.rec.Revenue, amount)
	if err != nil {
		return err
	}
	l.rec.Revenue = revenue
	l.rec.ServiceCount++
	return nil
}

// RevertService deshace un RecordService del mismo monto.
func (l *Ledger) RevertService(amount float64) error {
	if err := validateAmount("service amount", amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rec.ServiceCount == 0 || amount > l.rec.Revenue {
		return errors.NotValidf("revert of %v (nothing to revert)", amount)
	}
	l.rec.Revenue -= amount
	l.rec.ServiceCount--
	return nil
}

func (l *Ledger) RecordExpense(amount float64) error {
	if err := validateAmount("expense", amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	expenses, err := add("expenses", l.rec.Expenses, amount)
	if err != nil {
		return err
	}
	l.rec.Expenses = expenses
	return nil
}

func (l *Ledger) SetPaymentMethod(method string) error {
	m, err := validatePaymentMethod(method)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rec.PaymentMethod = m
	return nil
}

func (l *Ledger) SetRecordDate(d time.Time) error {
	if err := validateRecordDate(d, l.now()); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rec.RecordDate = d
	return nil
}

// SetRevenue y SetServiceCount son correcciones manuales del total.
func (l *Ledger) SetRevenue(v float64) error {
	if err := validateAmount("revenue", v); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rec.Revenue = v
	return nil
}

func (l *Ledger) SetServiceCount(n int) error {
	if n < 0 {
		return errors.NotValidf("service count %d (negative)", n)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rec.ServiceCount = n
	return nil
}

func (l *Ledger) Balance() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec.Balance()
}

func (l *Ledger) Record() Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rec
}

func (l *Ledger) Summary() Summary {
	return l.Record().Summary()
}

func validateAmount(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errors.NotValidf("%s %v (must be zero or positive)", what, v)
	}
	return nil
}

// add rechaza sumas que dejan de ser finitas.
func add(what string, total, amount float64) (float64, error) {
	sum := total + amount
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		return total, errors.NotValidf("%s %v + %v (out of range)", what, total, amount)
	}
	return sum, nil
}

func validatePaymentMethod(m string) (string, error) {
	m = strings.TrimSpace(m)
	if m == "" {
		return "", errors.NotValidf("empty payment method")
	}
	return m, nil
}

func validateRecordDate(d, now time.Time) error {
	if d.IsZero() {
		return errors.NotValidf("empty record date")
	}
	if dateOnly(d).After(dateOnly(now.In(d.Location()))) {
		return errors.NotValidf("record date %s in the future", d.Format(time.DateOnly))
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
