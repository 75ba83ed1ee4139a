package repository

import "github.com/viagrua/viagrua-api/internal/domain/entity"

// InvitacionRepository define el puerto de persistencia para Invitacion (DIP).
type InvitacionRepository interface {
	Create(invitacion *entity.Invitacion) error
	GetByCodigo(codigo string) (*entity.Invitacion, error)
	// MarcarUsada marca la invitación como usada solo si seguía sin usar
	// (update condicional). Devuelve false si otro registro ganó la carrera.
	MarcarUsada(id string) (bool, error)
}
