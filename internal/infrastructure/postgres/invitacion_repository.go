package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

var _ repository.InvitacionRepository = (*InvitacionRepo)(nil)

// InvitacionRepo implementación de InvitacionRepository sobre PostgreSQL (usable con pool o tx).
type InvitacionRepo struct {
	q Querier
}

// NewInvitacionRepository construye el adaptador de persistencia para invitaciones. Pasar pool o tx (Querier).
func NewInvitacionRepository(q Querier) *InvitacionRepo {
	return &InvitacionRepo{q: q}
}

// Create persiste una nueva invitación.
func (r *InvitacionRepo) Create(inv *entity.Invitacion) error {
	query := `
		INSERT INTO invitaciones (id, empresa_id, codigo, usado, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.EmpresaID, inv.Codigo, inv.Usado, inv.ExpiresAt, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invitacion: %w", err)
	}
	return nil
}

// GetByCodigo obtiene una invitación por su código.
func (r *InvitacionRepo) GetByCodigo(codigo string) (*entity.Invitacion, error) {
	query := `
		SELECT id, empresa_id, codigo, usado, expires_at, created_at
		FROM invitaciones WHERE codigo = $1`
	var inv entity.Invitacion
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&inv.ID, &inv.EmpresaID, &inv.Codigo, &inv.Usado, &inv.ExpiresAt, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitacion by codigo: %w", err)
	}
	return &inv, nil
}

// MarcarUsada marca la invitación como usada solo si seguía sin usar (update
// condicional). Devuelve false si otro registro concurrente ganó la carrera.
func (r *InvitacionRepo) MarcarUsada(id string) (bool, error) {
	query := `UPDATE invitaciones SET usado = true WHERE id = $1 AND usado = false`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return false, fmt.Errorf("marcar invitacion usada: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
