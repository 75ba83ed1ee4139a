package entity

import "time"

// Roles válidos para Perfil.
const (
	RolAdmin  = "admin"
	RolChofer = "chofer"
)

// Perfil representa un usuario del sistema (pertenece a una Empresa).
// Además de identidad y rol, lleva el estado de suscripción: plan, fecha de
// renovación y el contador mensual de traslados que respalda el cupo del plan free.
type Perfil struct {
	ID                 string
	EmpresaID          string
	Email              string
	PasswordHash       string     // bcrypt hash, nunca plano en dominio después de persistir
	NombreCompleto     string
	Rol                string     // admin, chofer
	Plan               string     // free, mensual, anual, premium
	PlanRenovacion     *time.Time // nil = sin vencimiento (free)
	FechaCompra        *time.Time
	TrasladosMesActual int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
