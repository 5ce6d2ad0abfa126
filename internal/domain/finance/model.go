package finance

import "time"

// Record es el registro financiero único de la tienda.
// El saldo no se guarda: siempre es Revenue - Expenses.
type Record struct {
	Revenue       float64
	ServiceCount  int
	PaymentMethod string
	RecordDate    time.Time
	Expenses      float64
}

func (r Record) Balance() float64 {
	return r.Revenue - r.Expenses
}

// Summary es lo que se muestra al usuario.
type Summary struct {
	Revenue       float64
	ServiceCount  int
	PaymentMethod string
	RecordDate    time.Time
	Expenses      float64
	Balance       float64
}

func (r Record) Summary() Summary {
	return Summary{
		Revenue:       r.Revenue,
		ServiceCount:  r.ServiceCount,
		PaymentMethod: r.PaymentMethod,
		RecordDate:    r.RecordDate,
		Expenses:      r.Expenses,
		Balance:       r.Balance(),
	}
}
