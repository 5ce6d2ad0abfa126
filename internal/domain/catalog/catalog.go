// Package catalog es la tabla fija de servicios: precio por (servicio, porte) y duración por servicio.
package catalog

import (
	"strings"

	"pet-grooming-shop/internal/domain/pets"
)

// DefaultDuration se usa cuando el servicio no está en la tabla.
const DefaultDuration = 60

// Entry es una fila de la tabla.
type Entry struct {
	Name     string
	Prices   map[pets.SizeTier]float64
	Duration int // minutos, no depende del porte
}

// Orden estable: es el que ve el cliente al listar servicios.
var entries = []Entry{
	{Name: "Bath", Duration: 60, Prices: tiers(60, 80, 130)},
	{Name: "Scissor Grooming", Duration: 180, Prices: tiers(100, 130, 160)},
	{Name: "Machine Grooming", Duration: 80, Prices: tiers(85, 110, 120)},
	{Name: "Puppy Grooming", Duration: 180, Prices: tiers(140, 165, 180)},
	{Name: "Hygienic Grooming", Duration: 70, Prices: tiers(55, 65, 100)},
	{Name: "Nail Trim", Duration: 20, Prices: tiers(15, 15, 15)},
	{Name: "Ear Cleaning", Duration: 20, Prices: tiers(10, 10, 10)},
	{Name: "Hydration", Duration: 60, Prices: tiers(90, 120, 150)},
	{Name: "Undercoat Removal", Duration: 120, Prices: tiers(30, 50, 70)},
}

var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}()

func tiers(small, medium, large float64) map[pets.SizeTier]float64 {
	return map[pets.SizeTier]float64{
		pets.SizeSmall:  small,
		pets.SizeMedium: medium,
		pets.SizeLarge:  large,
	}
}

// PriceOf devuelve 0 para combinaciones desconocidas en vez de fallar.
// Booking valida el servicio antes, así que en la práctica el 0 solo aparece con un porte inválido.
func PriceOf(service string, size pets.SizeTier) float64 {
	e, ok := byName[service]
	if !ok {
		return 0
	}
	return e.Prices[size]
}

// DurationOf devuelve DefaultDuration si el servicio no existe.
func DurationOf(service string) int {
	e, ok := byName[service]
	if !ok {
		return DefaultDuration
	}
	return e.Duration
}

func IsKnown(service string) bool {
	_, ok := byName[service]
	return ok
}

// Lookup resuelve el nombre canónico sin distinguir mayúsculas ni espacios extremos.
func Lookup(service string) (string, bool) {
	s := strings.TrimSpace(service)
	if _, ok := byName[s]; ok {
		return s, true
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, s) {
			return e.Name, true
		}
	}
	return "", false
}

// Names devuelve los servicios en el orden fijo del catálogo.
func Names() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

// List devuelve copias: la tabla no se puede modificar desde afuera.
func List() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		prices := make(map[pets.SizeTier]float64, len(e.Prices))
		for k, v := range e.Prices {
			prices[k] = v
		}
		out = append(out, Entry{Name: e.Name, Prices: prices, Duration: e.Duration})
	}
	return out
}
