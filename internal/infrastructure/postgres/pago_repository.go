package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo libro de pagos procesados sobre PostgreSQL. La clave primaria en
// payment_id es la que garantiza la idempotencia del webhook.
type PagoRepo struct {
	pool *pgxpool.Pool
}

// NewPagoRepository construye el adaptador del libro de pagos.
func NewPagoRepository(pool *pgxpool.Pool) *PagoRepo {
	return &PagoRepo{pool: pool}
}

// Registrar inserta el pago; domain.ErrPagoYaAplicado si el payment_id ya existía.
func (r *PagoRepo) Registrar(ctx context.Context, pago *entity.PagoProcesado) error {
	query := `
		INSERT INTO pagos_procesados (payment_id, perfil_id, plan, monto, procesado_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		pago.PaymentID, pago.PerfilID, pago.Plan, pago.Monto, pago.ProcesadoAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPagoYaAplicado
		}
		return fmt.Errorf("insert pago procesado: %w", err)
	}
	return nil
}

// Existe informa si un payment_id ya fue aplicado.
func (r *PagoRepo) Existe(ctx context.Context, paymentID string) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pagos_procesados WHERE payment_id = $1)`, paymentID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe pago procesado: %w", err)
	}
	return existe, nil
}
