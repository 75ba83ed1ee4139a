package suscripciones

import (
	"context"
	"errors"
	"time"

	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// WebhookUseCase procesa notificaciones de pago de Mercado Pago.
//
// La notificación solo aporta el ID: el pago se reconsulta a la API oficial y
// las decisiones se toman sobre esa respuesta. Un pago no aprobado no muta
// ningún perfil. El libro pagos_procesados hace idempotente la entrega
// at-least-once del procesador: la reentrega de un pago ya aplicado se
// reconoce sin re-aplicar nada.
type WebhookUseCase struct {
	perfilRepo repository.PerfilRepository
	pagoRepo   repository.PagoRepository
	gateway    PaymentGateway
}

// NewWebhookUseCase construye el caso de uso.
func NewWebhookUseCase(perfilRepo repository.PerfilRepository, pagoRepo repository.PagoRepository, gateway PaymentGateway) *WebhookUseCase {
	return &WebhookUseCase{perfilRepo: perfilRepo, pagoRepo: pagoRepo, gateway: gateway}
}

// Procesar aplica una notificación. Los errores devueltos producen respuestas
// no-2xx y por lo tanto reintentos del procesador.
func (uc *WebhookUseCase) Procesar(ctx context.Context, notif dto.WebhookNotification) (*dto.WebhookAck, error) {
	if notif.Type != "payment" && notif.Type != "merchant_order" {
		return &dto.WebhookAck{Received: true, Ignored: "tipo no relevante"}, nil
	}
	if notif.Data.ID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Reentrega de un pago ya aplicado: reconocer sin tocar nada.
	if done, err := uc.pagoRepo.Existe(ctx, notif.Data.ID); err == nil && done {
		return &dto.WebhookAck{Received: true, Ignored: "pago ya aplicado"}, nil
	}

	pago, err := uc.gateway.ObtenerPago(ctx, notif.Data.ID)
	if err != nil {
		return nil, domain.ErrPasarelaPago
	}
	if pago == nil {
		return nil, domain.ErrNotFound
	}
	if pago.Status != "approved" {
		return &dto.WebhookAck{Received: true, Ignored: "not approved"}, nil
	}

	userID, _ := pago.Metadata["user_id"].(string)
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	plan := planDesdeMetadata(pago.Metadata)

	perfil, err := uc.perfilRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	renovacion := now.Add(entity.Planes[plan].Duracion)
	if err := uc.perfilRepo.ActualizarSuscripcion(ctx, perfil.ID, plan, renovacion, now); err != nil {
		return nil, err
	}

	err = uc.pagoRepo.Registrar(ctx, &entity.PagoProcesado{
		PaymentID:   pago.ID,
		PerfilID:    perfil.ID,
		Plan:        plan,
		Monto:       pago.Monto,
		ProcesadoAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPagoYaAplicado) {
			return &dto.WebhookAck{Received: true, Ignored: "pago ya aplicado"}, nil
		}
		return nil, err
	}
	return &dto.WebhookAck{Received: true, Updated: true}, nil
}

// planDesdeMetadata lee el plan comprado de los metadatos del pago.
// Los checkouts viejos no mandaban plan: se asume premium.
func planDesdeMetadata(metadata map[string]any) string {
	plan, _ := metadata["plan"].(string)
	if info, ok := entity.Planes[plan]; ok && plan != entity.PlanFree && info.Duracion > 0 {
		return plan
	}
	return entity.PlanPremium
}
