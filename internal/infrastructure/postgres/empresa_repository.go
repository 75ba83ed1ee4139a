package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	pool *pgxpool.Pool
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(pool *pgxpool.Pool) *EmpresaRepo {
	return &EmpresaRepo{pool: pool}
}

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, nombre, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		empresa.ID, empresa.Nombre, empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `SELECT id, nombre, created_at, updated_at FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nombre, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by id: %w", err)
	}
	return &e, nil
}

// Update actualiza una empresa.
func (r *EmpresaRepo) Update(empresa *entity.Empresa) error {
	query := `UPDATE empresas SET nombre = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, empresa.ID, empresa.Nombre, empresa.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}
