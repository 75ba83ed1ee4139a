package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viagrua/viagrua-api/internal/application/auth"
	"github.com/viagrua/viagrua-api/internal/application/equipo"
	"github.com/viagrua/viagrua-api/internal/application/traslados"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// Ensure TxRunner implements traslados.TxRunner, equipo.TxRunner y auth.TxRunner.
var _ traslados.TxRunner = (*TxRunner)(nil)
var _ equipo.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Se usa para reservar cupo mensual e insertar el traslado como unidad atómica.
func (r *TxRunner) Run(ctx context.Context, fn func(
	perfilRepo repository.PerfilRepository,
	trasladoRepo repository.TrasladoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	perfilRepo := NewPerfilRepository(tx)
	trasladoRepo := NewTrasladoRepository(tx)

	if err := fn(perfilRepo, trasladoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunExpulsion inicia una transacción para expulsar un chofer (reasignar
// traslados activos y borrar el perfil sin dejar trabajos huérfanos).
func (r *TxRunner) RunExpulsion(ctx context.Context, fn func(
	perfilRepo repository.PerfilRepository,
	trasladoRepo repository.TrasladoRepository,
) error) error {
	return r.Run(ctx, fn)
}

// RunUnirse inicia una transacción para canjear una invitación: marcar el
// código como usado y crear el perfil del chofer, todo o nada.
func (r *TxRunner) RunUnirse(ctx context.Context, fn func(
	perfilRepo repository.PerfilRepository,
	invitacionRepo repository.InvitacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	perfilRepo := NewPerfilRepository(tx)
	invitacionRepo := NewInvitacionRepository(tx)

	if err := fn(perfilRepo, invitacionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
