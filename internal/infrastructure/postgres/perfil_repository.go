package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

var _ repository.PerfilRepository = (*PerfilRepo)(nil)

const perfilColumns = `id, empresa_id, email, password_hash, nombre_completo, rol, plan,
		plan_renovacion, fecha_compra, traslados_mes_actual, created_at, updated_at`

// PerfilRepo implementación de PerfilRepository sobre PostgreSQL (usable con pool o tx).
type PerfilRepo struct {
	q Querier
}

// NewPerfilRepository construye el adaptador de persistencia para perfiles. Pasar pool o tx (Querier).
func NewPerfilRepository(q Querier) *PerfilRepo {
	return &PerfilRepo{q: q}
}

// Create persiste un nuevo perfil.
func (r *PerfilRepo) Create(perfil *entity.Perfil) error {
	query := `
		INSERT INTO perfiles (id, empresa_id, email, password_hash, nombre_completo, rol, plan,
			plan_renovacion, fecha_compra, traslados_mes_actual, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		perfil.ID, perfil.EmpresaID, perfil.Email, perfil.PasswordHash, perfil.NombreCompleto,
		perfil.Rol, perfil.Plan, perfil.PlanRenovacion, perfil.FechaCompra,
		perfil.TrasladosMesActual, perfil.CreatedAt, perfil.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert perfil: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *PerfilRepo) GetByID(id string) (*entity.Perfil, error) {
	query := `SELECT ` + perfilColumns + ` FROM perfiles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get perfil by id")
}

// GetByEmail obtiene un perfil por email.
func (r *PerfilRepo) GetByEmail(email string) (*entity.Perfil, error) {
	query := `SELECT ` + perfilColumns + ` FROM perfiles WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get perfil by email")
}

// Update actualiza los datos editables de un perfil.
func (r *PerfilRepo) Update(perfil *entity.Perfil) error {
	query := `
		UPDATE perfiles SET email = $2, password_hash = $3, nombre_completo = $4, rol = $5,
			plan = $6, plan_renovacion = $7, fecha_compra = $8, traslados_mes_actual = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		perfil.ID, perfil.Email, perfil.PasswordHash, perfil.NombreCompleto, perfil.Rol,
		perfil.Plan, perfil.PlanRenovacion, perfil.FechaCompra, perfil.TrasladosMesActual,
		perfil.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update perfil: %w", err)
	}
	return nil
}

// ListChoferes lista los perfiles con rol chofer de una empresa.
func (r *PerfilRepo) ListChoferes(empresaID string) ([]*entity.Perfil, error) {
	query := `SELECT ` + perfilColumns + `
		FROM perfiles WHERE empresa_id = $1 AND rol = 'chofer' ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list choferes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Perfil
	for rows.Next() {
		var p entity.Perfil
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Email, &p.PasswordHash, &p.NombreCompleto,
			&p.Rol, &p.Plan, &p.PlanRenovacion, &p.FechaCompra, &p.TrasladosMesActual,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan perfil: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un perfil por ID.
func (r *PerfilRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM perfiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete perfil: %w", err)
	}
	return nil
}

// ReservarTraslado incrementa el contador mensual solo si todavía vale
// contadorActual (lock optimista). Cero filas afectadas significa que otra
// petición concurrente ganó la carrera.
func (r *PerfilRepo) ReservarTraslado(ctx context.Context, perfilID string, contadorActual int) (bool, error) {
	query := `
		UPDATE perfiles SET traslados_mes_actual = $2 + 1, updated_at = now()
		WHERE id = $1 AND traslados_mes_actual = $2`
	tag, err := r.q.Exec(ctx, query, perfilID, contadorActual)
	if err != nil {
		return false, fmt.Errorf("reservar traslado: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ActualizarSuscripcion aplica un pago aprobado: plan, renovación y fecha de compra.
func (r *PerfilRepo) ActualizarSuscripcion(ctx context.Context, perfilID, plan string, renovacion, compra time.Time) error {
	query := `
		UPDATE perfiles SET plan = $2, plan_renovacion = $3, fecha_compra = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, perfilID, plan, renovacion, compra)
	if err != nil {
		return fmt.Errorf("actualizar suscripcion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ResetContadoresMensuales pone en cero traslados_mes_actual de todos los perfiles.
func (r *PerfilRepo) ResetContadoresMensuales(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `UPDATE perfiles SET traslados_mes_actual = 0, updated_at = now()
		WHERE traslados_mes_actual > 0`)
	if err != nil {
		return 0, fmt.Errorf("reset contadores: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PerfilRepo) scanOne(row pgx.Row, op string) (*entity.Perfil, error) {
	var p entity.Perfil
	err := row.Scan(&p.ID, &p.EmpresaID, &p.Email, &p.PasswordHash, &p.NombreCompleto,
		&p.Rol, &p.Plan, &p.PlanRenovacion, &p.FechaCompra, &p.TrasladosMesActual,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
