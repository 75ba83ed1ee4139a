package suscripciones_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/application/suscripciones"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePerfilRepo struct {
	repository.PerfilRepository
	perfil *entity.Perfil

	actualizaciones int
	ultimoPlan      string
	ultimaRenov     time.Time
}

func (f *fakePerfilRepo) GetByID(id string) (*entity.Perfil, error) {
	if f.perfil != nil && f.perfil.ID == id {
		return f.perfil, nil
	}
	return nil, nil
}

func (f *fakePerfilRepo) ActualizarSuscripcion(_ context.Context, perfilID, plan string, renovacion, _ time.Time) error {
	f.actualizaciones++
	f.ultimoPlan = plan
	f.ultimaRenov = renovacion
	return nil
}

type fakePagoRepo struct {
	registrados map[string]bool
	// preExistente simula un pago ya aplicado antes de esta notificación.
	preExistente bool
}

func newFakePagoRepo() *fakePagoRepo {
	return &fakePagoRepo{registrados: map[string]bool{}}
}

func (f *fakePagoRepo) Registrar(_ context.Context, pago *entity.PagoProcesado) error {
	if f.registrados[pago.PaymentID] {
		return domain.ErrPagoYaAplicado
	}
	f.registrados[pago.PaymentID] = true
	return nil
}

func (f *fakePagoRepo) Existe(_ context.Context, paymentID string) (bool, error) {
	return f.preExistente || f.registrados[paymentID], nil
}

type fakeGateway struct {
	pago      *suscripciones.Pago
	err       error
	consultas int
}

func (f *fakeGateway) CrearPreferencia(context.Context, suscripciones.PreferenciaInput) (*suscripciones.Preferencia, error) {
	return nil, errors.New("no usado en estos tests")
}

func (f *fakeGateway) ObtenerPago(context.Context, string) (*suscripciones.Pago, error) {
	f.consultas++
	return f.pago, f.err
}

func notifPago(id string) dto.WebhookNotification {
	var n dto.WebhookNotification
	n.Type = "payment"
	n.Data.ID = id
	return n
}

func pagoAprobado(userID, plan string) *suscripciones.Pago {
	return &suscripciones.Pago{
		ID:     "777",
		Status: "approved",
		Metadata: map[string]any{
			"user_id": userID,
			"plan":    plan,
		},
		Monto: decimal.NewFromInt(10),
	}
}

func buildWebhookUC(perfil *entity.Perfil, gw *fakeGateway) (*suscripciones.WebhookUseCase, *fakePerfilRepo, *fakePagoRepo) {
	perfilRepo := &fakePerfilRepo{perfil: perfil}
	pagoRepo := newFakePagoRepo()
	return suscripciones.NewWebhookUseCase(perfilRepo, pagoRepo, gw), perfilRepo, pagoRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Tipos que no son payment ni merchant_order se reconocen sin consultar nada.
func TestWebhook_TipoNoRelevante_Ignora(t *testing.T) {
	gw := &fakeGateway{}
	uc, perfilRepo, _ := buildWebhookUC(&entity.Perfil{ID: "u-1"}, gw)

	var n dto.WebhookNotification
	n.Type = "plan"
	n.Data.ID = "123"
	ack, err := uc.Procesar(context.Background(), n)

	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.NotEmpty(t, ack.Ignored)
	assert.Zero(t, gw.consultas, "tipo irrelevante no consulta la pasarela")
	assert.Zero(t, perfilRepo.actualizaciones)
}

// Notificación sin data.id es inválida.
func TestWebhook_SinDataID_Invalida(t *testing.T) {
	uc, _, _ := buildWebhookUC(&entity.Perfil{ID: "u-1"}, &fakeGateway{})

	_, err := uc.Procesar(context.Background(), notifPago(""))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Fallo consultando la pasarela: error para que el procesador reintente.
func TestWebhook_PasarelaFalla_Error(t *testing.T) {
	gw := &fakeGateway{err: errors.New("timeout")}
	uc, perfilRepo, _ := buildWebhookUC(&entity.Perfil{ID: "u-1"}, gw)

	_, err := uc.Procesar(context.Background(), notifPago("777"))

	assert.ErrorIs(t, err, domain.ErrPasarelaPago)
	assert.Zero(t, perfilRepo.actualizaciones)
}

// Un pago no aprobado no muta ningún perfil.
func TestWebhook_PagoNoAprobado_NoMuta(t *testing.T) {
	pago := pagoAprobado("u-1", entity.PlanMensual)
	pago.Status = "pending"
	gw := &fakeGateway{pago: pago}
	uc, perfilRepo, pagoRepo := buildWebhookUC(&entity.Perfil{ID: "u-1"}, gw)

	ack, err := uc.Procesar(context.Background(), notifPago("777"))

	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.False(t, ack.Updated)
	assert.Zero(t, perfilRepo.actualizaciones)
	assert.Empty(t, pagoRepo.registrados, "un pago no aprobado no entra al libro")
}

// Pago aprobado sin metadata.user_id es inválido.
func TestWebhook_SinUserID_Invalido(t *testing.T) {
	pago := pagoAprobado("", entity.PlanMensual)
	delete(pago.Metadata, "user_id")
	uc, perfilRepo, _ := buildWebhookUC(&entity.Perfil{ID: "u-1"}, &fakeGateway{pago: pago})

	_, err := uc.Procesar(context.Background(), notifPago("777"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, perfilRepo.actualizaciones)
}

// Pago aprobado: actualiza exactamente ese perfil con el plan del metadata y
// una renovación acorde a la duración del plan.
func TestWebhook_PagoAprobado_ActualizaSuscripcion(t *testing.T) {
	gw := &fakeGateway{pago: pagoAprobado("u-1", entity.PlanMensual)}
	uc, perfilRepo, pagoRepo := buildWebhookUC(&entity.Perfil{ID: "u-1"}, gw)

	ack, err := uc.Procesar(context.Background(), notifPago("777"))

	require.NoError(t, err)
	assert.True(t, ack.Updated)
	assert.Equal(t, 1, perfilRepo.actualizaciones)
	assert.Equal(t, entity.PlanMensual, perfilRepo.ultimoPlan)

	esperada := time.Now().Add(entity.Planes[entity.PlanMensual].Duracion)
	assert.WithinDuration(t, esperada, perfilRepo.ultimaRenov, time.Minute)
	assert.True(t, pagoRepo.registrados["777"], "el pago debe quedar en el libro")
}

// Metadata sin plan (checkouts viejos): se asume premium.
func TestWebhook_SinPlanEnMetadata_AsumePremium(t *testing.T) {
	pago := pagoAprobado("u-1", "")
	delete(pago.Metadata, "plan")
	uc, perfilRepo, _ := buildWebhookUC(&entity.Perfil{ID: "u-1"}, &fakeGateway{pago: pago})

	_, err := uc.Procesar(context.Background(), notifPago("777"))

	require.NoError(t, err)
	assert.Equal(t, entity.PlanPremium, perfilRepo.ultimoPlan)
}

// Reentrega del mismo pago: reconocida sin volver a consultar ni re-aplicar.
func TestWebhook_Reentrega_Idempotente(t *testing.T) {
	gw := &fakeGateway{pago: pagoAprobado("u-1", entity.PlanAnual)}
	uc, perfilRepo, _ := buildWebhookUC(&entity.Perfil{ID: "u-1"}, gw)

	_, err := uc.Procesar(context.Background(), notifPago("777"))
	require.NoError(t, err)
	consultasTrasPrimera := gw.consultas

	ack, err := uc.Procesar(context.Background(), notifPago("777"))

	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.False(t, ack.Updated)
	assert.Equal(t, consultasTrasPrimera, gw.consultas, "la reentrega no vuelve a la pasarela")
	assert.Equal(t, 1, perfilRepo.actualizaciones, "la suscripción se aplica una sola vez")
}

// Pago que referencia un perfil inexistente.
func TestWebhook_PerfilInexistente(t *testing.T) {
	gw := &fakeGateway{pago: pagoAprobado("u-desconocido", entity.PlanMensual)}
	uc, _, _ := buildWebhookUC(&entity.Perfil{ID: "u-1"}, gw)

	_, err := uc.Procesar(context.Background(), notifPago("777"))

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
