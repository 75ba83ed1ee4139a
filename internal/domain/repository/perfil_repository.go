package repository

import (
	"context"
	"time"

	"github.com/viagrua/viagrua-api/internal/domain/entity"
)

// PerfilRepository define el puerto de persistencia para Perfil (DIP).
type PerfilRepository interface {
	Create(perfil *entity.Perfil) error
	GetByID(id string) (*entity.Perfil, error)
	GetByEmail(email string) (*entity.Perfil, error)
	Update(perfil *entity.Perfil) error
	ListChoferes(empresaID string) ([]*entity.Perfil, error)
	Delete(id string) error

	// ReservarTraslado incrementa el contador mensual solo si todavía vale
	// contadorActual (update condicional, lock optimista). Devuelve false si
	// otra petición ganó la carrera y el contador ya cambió.
	ReservarTraslado(ctx context.Context, perfilID string, contadorActual int) (bool, error)

	// ActualizarSuscripcion aplica un pago aprobado: plan, fecha de renovación y fecha de compra.
	ActualizarSuscripcion(ctx context.Context, perfilID, plan string, renovacion, compra time.Time) error

	// ResetContadoresMensuales pone traslados_mes_actual en cero para todos los
	// perfiles. Pensado para la tarea de mantenimiento de inicio de mes.
	ResetContadoresMensuales(ctx context.Context) (int64, error)
}
