// Package schedule decide si un (fecha, hora) es un turno admisible.
// Es la única fuente de verdad del horario de atención.
package schedule

import (
	"fmt"
	"time"

	"github.com/juju/errors"
)

const (
	// ErrSlotInPast: el turno es anterior a "ahora".
	ErrSlotInPast = errors.ConstError("appointment slot is in the past")
	// ErrOutsideBusinessHours: la tienda está cerrada en ese horario.
	ErrOutsideBusinessHours = errors.ConstError("shop is closed at the requested time")
)

// Clock es una hora del día con precisión de minuto.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

func (c Clock) seconds() int { return c.Hour*3600 + c.Minute*60 }

// Window es el intervalo abierto del día, ambos extremos incluidos.
type Window struct {
	Open  Clock
	Close Clock
}

// Lunes a viernes 08:00–18:00, sábado 09:00–13:00, domingo cerrado.
var businessHours = map[time.Weekday]Window{
	time.Monday:    {Open: Clock{8, 0}, Close: Clock{18, 0}},
	time.Tuesday:   {Open: Clock{8, 0}, Close: Clock{18, 0}},
	time.Wednesday: {Open: Clock{8, 0}, Close: Clock{18, 0}},
	time.Thursday:  {Open: Clock{8, 0}, Close: Clock{18, 0}},
	time.Friday:    {Open: Clock{8, 0}, Close: Clock{18, 0}},
	time.Saturday:  {Open: Clock{9, 0}, Close: Clock{13, 0}},
}

// Hours devuelve la ventana del día; ok=false si la tienda no abre.
func Hours(day time.Weekday) (Window, bool) {
	w, ok := businessHours[day]
	return w, ok
}

// Contains usa los bordes exclusivos Open-1min / Close+1min,
// así 13:00:30 del sábado todavía entra y 13:01 ya no.
func (w Window) Contains(t time.Time) bool {
	sec := t.Hour()*3600 + t.Minute()*60 + t.Second()
	lower := w.Open.seconds() - 60
	upper := w.Close.seconds() + 60
	return sec > lower && sec < upper
}

// SlotError indica qué regla se violó. Es NotValid y además matchea ErrSlotInPast
// o ErrOutsideBusinessHours con errors.Is.
type SlotError struct {
	Kind errors.ConstError
	At   time.Time
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Kind, e.At.Format("2006-01-02 15:04 Mon"))
}

func (e *SlotError) Is(target error) bool {
	return target == e.Kind || target == errors.NotValid
}

// Check aplica las reglas en orden: pasado, después horario.
// now se lleva a la zona de at para comparar fecha y hora locales de la tienda.
func Check(at, now time.Time) error {
	now = now.In(at.Location())
	if at.Before(now) {
		return &SlotError{Kind: ErrSlotInPast, At: at}
	}

	w, open := Hours(at.Weekday())
	if !open || !w.Contains(at) {
		return &SlotError{Kind: ErrOutsideBusinessHours, At: at}
	}
	return nil
}

func IsValid(at, now time.Time) bool {
	return Check(at, now) == nil
}

// At combina una fecha (se ignora su hora) y un Clock en loc.
func At(date time.Time, c Clock, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

// ParseClock acepta "HH:MM".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, errors.NotValidf("time %q (expected HH:MM)", s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}
