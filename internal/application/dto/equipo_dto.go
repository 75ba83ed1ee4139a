package dto

import "time"

// InvitacionResponse invitación generada o consultada.
type InvitacionResponse struct {
	Codigo        string    `json:"codigo"`
	EmpresaID     string    `json:"empresa_id"`
	EmpresaNombre string    `json:"empresa_nombre,omitempty"`
	Usado         bool      `json:"usado"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// ChoferResponse entrada del listado de choferes.
type ChoferResponse struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombre_completo"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

// ExpulsionResponse resultado de expulsar un chofer.
type ExpulsionResponse struct {
	ChoferID             string `json:"chofer_id"`
	TrasladosReasignados int64  `json:"traslados_reasignados"`
}
