package inventory

import "time"

// Product: Code lo asigna el caller y es único.
type Product struct {
	Code     int
	Name     string
	Category string // ej. Higiene, Alimento, Juguetes
	Price    float64
	Stock    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Direction de un ajuste de stock.
// @Enum in, out
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Outcome es el resultado de una operación de stock o precio.
// Un rechazo (OK=false) no es un error: es input de usuario esperable y no toca el producto.
type Outcome struct {
	OK      bool
	Message string
	Stock   int
	Price   float64
}
