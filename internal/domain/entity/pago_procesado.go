package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PagoProcesado registro idempotente de un pago aprobado ya aplicado.
// Mercado Pago entrega notificaciones at-least-once; la clave única sobre
// PaymentID convierte la reentrega en un no-op reconocido.
type PagoProcesado struct {
	PaymentID   string
	PerfilID    string
	Plan        string
	Monto       decimal.Decimal
	ProcesadoAt time.Time
}
