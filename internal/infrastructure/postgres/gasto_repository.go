package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación del puerto GastoRepository sobre PostgreSQL.
type GastoRepo struct {
	pool *pgxpool.Pool
}

// NewGastoRepository construye el adaptador de persistencia para gastos.
func NewGastoRepository(pool *pgxpool.Pool) *GastoRepo {
	return &GastoRepo{pool: pool}
}

// Create persiste un nuevo gasto.
func (r *GastoRepo) Create(gasto *entity.Gasto) error {
	query := `
		INSERT INTO gastos (id, empresa_id, autor_id, tipo, importe, fecha, descripcion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		gasto.ID, gasto.EmpresaID, gasto.AutorID, gasto.Tipo, gasto.Importe,
		gasto.Fecha, gasto.Descripcion, gasto.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *GastoRepo) GetByID(id string) (*entity.Gasto, error) {
	query := `
		SELECT id, empresa_id, autor_id, tipo, importe, fecha, descripcion, created_at
		FROM gastos WHERE id = $1`
	var g entity.Gasto
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.EmpresaID, &g.AutorID, &g.Tipo, &g.Importe, &g.Fecha, &g.Descripcion, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto by id: %w", err)
	}
	return &g, nil
}

// ListByEmpresa lista gastos de la empresa ordenados por fecha descendente.
func (r *GastoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Gasto, error) {
	query := `
		SELECT id, empresa_id, autor_id, tipo, importe, fecha, descripcion, created_at
		FROM gastos WHERE empresa_id = $1
		ORDER BY fecha DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.EmpresaID, &g.AutorID, &g.Tipo, &g.Importe, &g.Fecha, &g.Descripcion, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Delete elimina un gasto por ID.
func (r *GastoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	return nil
}
