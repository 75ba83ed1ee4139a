package suscripciones

import (
	"context"

	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// CheckoutUseCase crea preferencias de pago para la compra de un plan.
type CheckoutUseCase struct {
	perfilRepo repository.PerfilRepository
	gateway    PaymentGateway
	moneda     string
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(perfilRepo repository.PerfilRepository, gateway PaymentGateway, moneda string) *CheckoutUseCase {
	return &CheckoutUseCase{perfilRepo: perfilRepo, gateway: gateway, moneda: moneda}
}

// Checkout valida el plan, arma la preferencia con los metadatos del comprador
// (user_id y plan viajan en metadata para que el webhook los recupere del pago)
// y devuelve la URL de redirección.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	info, ok := entity.Planes[in.Plan]
	if !ok || in.Plan == entity.PlanFree {
		return nil, domain.ErrPlanInvalido
	}
	perfil, err := uc.perfilRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}

	pref, err := uc.gateway.CrearPreferencia(ctx, PreferenciaInput{
		Plan:        in.Plan,
		Titulo:      info.Nombre,
		Descripcion: info.Descripcion,
		Precio:      info.Precio,
		Moneda:      uc.moneda,
		Email:       perfil.Email,
		UserID:      perfil.ID,
	})
	if err != nil {
		return nil, domain.ErrPasarelaPago
	}
	return &dto.CheckoutResponse{PreferenceID: pref.ID, InitPoint: pref.InitPoint}, nil
}
