package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viagrua/viagrua-api/internal/domain/entity"
)

func TestPlanEfectivo_FreeSiempreFree(t *testing.T) {
	p := &entity.Perfil{Plan: entity.PlanFree}
	assert.Equal(t, entity.PlanFree, p.PlanEfectivo(time.Now()))
}

func TestPlanEfectivo_PlanVacioDegradaAFree(t *testing.T) {
	p := &entity.Perfil{}
	assert.Equal(t, entity.PlanFree, p.PlanEfectivo(time.Now()))
}

func TestPlanEfectivo_PagoVigente(t *testing.T) {
	renovacion := time.Now().Add(10 * 24 * time.Hour)
	p := &entity.Perfil{Plan: entity.PlanMensual, PlanRenovacion: &renovacion}
	assert.Equal(t, entity.PlanMensual, p.PlanEfectivo(time.Now()))
}

func TestPlanEfectivo_PagoVencidoDegradaAFree(t *testing.T) {
	vencida := time.Now().Add(-time.Hour)
	p := &entity.Perfil{Plan: entity.PlanAnual, PlanRenovacion: &vencida}
	assert.Equal(t, entity.PlanFree, p.PlanEfectivo(time.Now()))
}

func TestPlanEfectivo_PagoSinRenovacionDegradaAFree(t *testing.T) {
	p := &entity.Perfil{Plan: entity.PlanPremium}
	assert.Equal(t, entity.PlanFree, p.PlanEfectivo(time.Now()))
}

func TestCupoDisponible_Free(t *testing.T) {
	p := &entity.Perfil{Plan: entity.PlanFree, TrasladosMesActual: 12}
	assert.Equal(t, 18, p.CupoDisponible(time.Now()))
}

func TestCupoDisponible_FreeAgotado(t *testing.T) {
	p := &entity.Perfil{Plan: entity.PlanFree, TrasladosMesActual: 30}
	assert.Equal(t, 0, p.CupoDisponible(time.Now()))

	// Aunque el contador se pase del máximo, el cupo nunca es negativo.
	p.TrasladosMesActual = 45
	assert.Equal(t, 0, p.CupoDisponible(time.Now()))
}

func TestCupoDisponible_PagoIlimitado(t *testing.T) {
	renovacion := time.Now().Add(30 * 24 * time.Hour)
	p := &entity.Perfil{Plan: entity.PlanPremium, PlanRenovacion: &renovacion, TrasladosMesActual: 500}
	assert.Equal(t, -1, p.CupoDisponible(time.Now()))
}

func TestPuedeInvitarChoferes(t *testing.T) {
	now := time.Now()
	renovacion := now.Add(30 * 24 * time.Hour)
	vencida := now.Add(-time.Hour)

	free := &entity.Perfil{Plan: entity.PlanFree}
	assert.False(t, free.PuedeInvitarChoferes(now), "free no habilita choferes")

	mensual := &entity.Perfil{Plan: entity.PlanMensual, PlanRenovacion: &renovacion}
	assert.True(t, mensual.PuedeInvitarChoferes(now))

	vencido := &entity.Perfil{Plan: entity.PlanMensual, PlanRenovacion: &vencida}
	assert.False(t, vencido.PuedeInvitarChoferes(now), "plan vencido pierde el derecho")
}

func TestInvitacion_Vigente(t *testing.T) {
	now := time.Now()
	inv := &entity.Invitacion{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, inv.Vigente(now))

	inv.Usado = true
	assert.False(t, inv.Vigente(now), "usada deja de ser vigente")

	inv.Usado = false
	inv.ExpiresAt = now.Add(-time.Minute)
	assert.False(t, inv.Vigente(now), "vencida deja de ser vigente")
}
