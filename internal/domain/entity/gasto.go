package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto representa un gasto de la empresa registrado por un usuario
// (combustible, peajes, mantenimiento, etc.).
type Gasto struct {
	ID          string
	EmpresaID   string
	AutorID     string
	Tipo        string
	Importe     decimal.Decimal
	Fecha       time.Time
	Descripcion *string
	CreatedAt   time.Time
}
