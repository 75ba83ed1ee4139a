package suscripciones

import (
	"context"

	"github.com/shopspring/decimal"
)

// PreferenciaInput datos para crear una preferencia de Checkout Pro.
type PreferenciaInput struct {
	Plan        string
	Titulo      string
	Descripcion string
	Precio      decimal.Decimal
	Moneda      string
	Email       string
	UserID      string
}

// Preferencia preferencia creada en la pasarela.
type Preferencia struct {
	ID        string
	InitPoint string
}

// Pago detalle autoritativo de un pago, consultado por ID a la pasarela.
// Las decisiones financieras se toman sobre estos campos, nunca sobre el
// cuerpo de la notificación.
type Pago struct {
	ID                string
	Status            string
	Metadata          map[string]any
	ExternalReference string
	Monto             decimal.Decimal
}

// PaymentGateway puerto hacia Mercado Pago.
type PaymentGateway interface {
	CrearPreferencia(ctx context.Context, in PreferenciaInput) (*Preferencia, error)
	ObtenerPago(ctx context.Context, paymentID string) (*Pago, error)
}
