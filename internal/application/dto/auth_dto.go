package dto

import "time"

// RegistroRequest alta de una empresa con su perfil admin.
type RegistroRequest struct {
	EmpresaNombre string `json:"empresa_nombre" validate:"required,min=1,max=200"`
	Nombre        string `json:"nombre" validate:"required,min=1,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UnirseRequest canje de una invitación: registra un chofer en la empresa invitante.
type UnirseRequest struct {
	Codigo   string `json:"codigo" validate:"required"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// PerfilResponse salida de un perfil (sin password).
type PerfilResponse struct {
	ID                 string     `json:"id"`
	EmpresaID          string     `json:"empresa_id"`
	Email              string     `json:"email"`
	NombreCompleto     string     `json:"nombre_completo"`
	Rol                string     `json:"rol"`
	Plan               string     `json:"plan"`
	PlanEfectivo       string     `json:"plan_efectivo"`
	PlanRenovacion     *time.Time `json:"plan_renovacion,omitempty"`
	TrasladosMesActual int        `json:"traslados_mes_actual"`
	// CupoRestante -1 = ilimitado.
	CupoRestante int       `json:"cupo_restante"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT y el perfil autenticado.
type LoginResponse struct {
	Token  string         `json:"token"`
	Perfil PerfilResponse `json:"perfil"`
}
