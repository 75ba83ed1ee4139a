package mercadopago

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"github.com/viagrua/viagrua-api/internal/application/suscripciones"
	appconfig "github.com/viagrua/viagrua-api/pkg/config"
)

var _ suscripciones.PaymentGateway = (*Gateway)(nil)

// ErrAccessTokenFaltante se devuelve al construir el gateway sin MERCADOPAGO_ACCESS_TOKEN.
var ErrAccessTokenFaltante = errors.New("falta MERCADOPAGO_ACCESS_TOKEN")

// Gateway adaptador de Checkout Pro sobre el SDK oficial de Mercado Pago.
type Gateway struct {
	preferences preference.Client
	payments    payment.Client
	cfg         appconfig.MercadoPagoConfig
}

// NewGateway inicializa los clientes del SDK con el access token configurado.
func NewGateway(cfg appconfig.MercadoPagoConfig) (*Gateway, error) {
	if cfg.AccessToken == "" {
		return nil, ErrAccessTokenFaltante
	}
	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("configurar sdk mercadopago: %w", err)
	}
	return &Gateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
		cfg:         cfg,
	}, nil
}

// CrearPreferencia crea una preferencia de Checkout Pro para la compra de un plan.
// user_id y plan viajan en metadata: el webhook los lee del pago reconsultado.
func (g *Gateway) CrearPreferencia(ctx context.Context, in suscripciones.PreferenciaInput) (*suscripciones.Preferencia, error) {
	precio, _ := in.Precio.Float64()
	req := preference.Request{
		Items: []preference.ItemRequest{{
			ID:          in.Plan,
			Title:       in.Titulo,
			Description: in.Descripcion,
			UnitPrice:   precio,
			Quantity:    1,
			CurrencyID:  in.Moneda,
		}},
		Payer: &preference.PayerRequest{Email: in.Email},
		Metadata: map[string]any{
			"user_id": in.UserID,
			"plan":    in.Plan,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.cfg.SuccessURL,
			Failure: g.cfg.FailureURL,
			Pending: g.cfg.PendingURL,
		},
		AutoReturn:        "approved",
		NotificationURL:   g.cfg.NotificationURL,
		ExternalReference: in.UserID,
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("crear preferencia: %w", err)
	}
	return &suscripciones.Preferencia{ID: resp.ID, InitPoint: resp.InitPoint}, nil
}

// ObtenerPago reconsulta un pago por ID a la API de Mercado Pago.
func (g *Gateway) ObtenerPago(ctx context.Context, paymentID string) (*suscripciones.Pago, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment id inválido %q: %w", paymentID, err)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener pago %d: %w", id, err)
	}
	return &suscripciones.Pago{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		Metadata:          resp.Metadata,
		ExternalReference: resp.ExternalReference,
		Monto:             decimal.NewFromFloat(resp.TransactionAmount),
	}, nil
}
