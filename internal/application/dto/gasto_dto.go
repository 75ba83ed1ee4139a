package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGastoRequest alta de un gasto.
type CreateGastoRequest struct {
	Tipo        string          `json:"tipo" validate:"required,min=1,max=100"`
	Importe     decimal.Decimal `json:"importe" validate:"required"`
	Fecha       string          `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Descripcion string          `json:"descripcion" validate:"omitempty,max=500"`
}

// GastoResponse salida de un gasto.
type GastoResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	AutorID     string          `json:"autor_id"`
	Tipo        string          `json:"tipo"`
	Importe     decimal.Decimal `json:"importe"`
	Fecha       time.Time       `json:"fecha"`
	Descripcion *string         `json:"descripcion,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GastoListResponse listado paginado de gastos.
type GastoListResponse struct {
	Items  []GastoResponse `json:"items"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
