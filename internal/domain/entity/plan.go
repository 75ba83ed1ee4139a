package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Planes de suscripción disponibles.
const (
	PlanFree    = "free"
	PlanMensual = "mensual"
	PlanAnual   = "anual"
	PlanPremium = "premium"
)

// PlanInfo describe un plan: precio de la preferencia de pago, duración y
// los derechos que habilita (cupo mensual de traslados e invitación de choferes).
type PlanInfo struct {
	Nombre       string
	Descripcion  string
	Precio       decimal.Decimal
	Duracion     time.Duration // vigencia de la suscripción tras un pago aprobado
	TrasladosMax int           // 0 = ilimitado
	PuedeChofer  bool
}

// Planes catálogo de planes. Precios y descripciones según el checkout de producción.
var Planes = map[string]PlanInfo{
	PlanFree: {
		Nombre:       "Plan Free",
		Descripcion:  "Hasta 30 traslados por mes",
		Precio:       decimal.Zero,
		TrasladosMax: 30,
		PuedeChofer:  false,
	},
	PlanMensual: {
		Nombre:      "Plan Mensual",
		Descripcion: "Acceso completo por 1 mes",
		Precio:      decimal.NewFromInt(10),
		Duracion:    31 * 24 * time.Hour,
		PuedeChofer: true,
	},
	PlanAnual: {
		Nombre:      "Plan Anual",
		Descripcion: "Acceso completo por 1 año (2 meses bonificados)",
		Precio:      decimal.NewFromInt(20),
		Duracion:    365 * 24 * time.Hour,
		PuedeChofer: true,
	},
	PlanPremium: {
		Nombre:      "Plan Premium ViaGrua (1 año)",
		Descripcion: "Suscripción anual a ViaGrua con traslados ilimitados y acceso premium",
		Precio:      decimal.NewFromInt(990),
		Duracion:    365 * 24 * time.Hour,
		PuedeChofer: true,
	},
}

// PlanEfectivo devuelve el plan vigente del perfil en el instante dado.
// Un plan pago sin fecha de renovación, o con la renovación vencida, degrada a free.
func (p *Perfil) PlanEfectivo(now time.Time) string {
	plan := p.Plan
	if plan == "" {
		return PlanFree
	}
	if plan == PlanFree {
		return PlanFree
	}
	if p.PlanRenovacion == nil || now.After(*p.PlanRenovacion) {
		return PlanFree
	}
	return plan
}

// CupoDisponible informa cuántos traslados puede crear el perfil este mes.
// Devuelve -1 para planes sin límite.
func (p *Perfil) CupoDisponible(now time.Time) int {
	info, ok := Planes[p.PlanEfectivo(now)]
	if !ok || info.TrasladosMax == 0 {
		return -1
	}
	restante := info.TrasladosMax - p.TrasladosMesActual
	if restante < 0 {
		return 0
	}
	return restante
}

// PuedeInvitarChoferes informa si el plan vigente habilita la invitación de choferes.
func (p *Perfil) PuedeInvitarChoferes(now time.Time) bool {
	info, ok := Planes[p.PlanEfectivo(now)]
	return ok && info.PuedeChofer
}
