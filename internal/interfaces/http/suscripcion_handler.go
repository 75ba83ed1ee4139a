package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/application/suscripciones"
	"github.com/viagrua/viagrua-api/internal/domain"
)

// SuscripcionHandler maneja el checkout de planes y el webhook de Mercado Pago.
type SuscripcionHandler struct {
	checkoutUC *suscripciones.CheckoutUseCase
	webhookUC  *suscripciones.WebhookUseCase
	log        zerolog.Logger
}

// NewSuscripcionHandler construye el handler de suscripciones.
func NewSuscripcionHandler(checkoutUC *suscripciones.CheckoutUseCase, webhookUC *suscripciones.WebhookUseCase, log zerolog.Logger) *SuscripcionHandler {
	return &SuscripcionHandler{checkoutUC: checkoutUC, webhookUC: webhookUC, log: log}
}

// Checkout godoc
// @Summary      Crear preferencia de pago para un plan
// @Tags         suscripciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CheckoutRequest  true  "plan: mensual | anual | premium"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/suscripciones/checkout [post]
func (h *SuscripcionHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkoutUC.Checkout(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrPlanInvalido:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PLAN_INVALIDO", Message: "plan debe ser mensual, anual o premium"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		case domain.ErrPasarelaPago:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PASARELA_PAGO", Message: "no se pudo crear la preferencia en Mercado Pago"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Webhook godoc
// @Summary      Notificación de pago de Mercado Pago (público)
// @Tags         suscripciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WebhookNotification  true  "type + data.id"
// @Success      200   {object}  dto.WebhookAck
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/webhooks/mercadopago [post]
func (h *SuscripcionHandler) Webhook(c *fiber.Ctx) error {
	var in dto.WebhookNotification
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.webhookUC.Procesar(c.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Str("payment_id", in.Data.ID).Str("type", in.Type).Msg("webhook mercadopago falló")
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "notificación sin data.id o pago sin metadata.user_id"})
		case domain.ErrPasarelaPago:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PASARELA_PAGO", Message: "no se pudo consultar el pago en Mercado Pago"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado en Mercado Pago"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PERFIL_NOT_FOUND", Message: "el perfil referenciado por el pago no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out.Updated {
		h.log.Info().Str("payment_id", in.Data.ID).Msg("suscripción actualizada por webhook")
	}
	return c.JSON(out)
}
