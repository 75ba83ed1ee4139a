package repository

import (
	"context"

	"github.com/viagrua/viagrua-api/internal/domain/entity"
)

// PagoRepository define el puerto del libro de pagos procesados (idempotencia del webhook).
type PagoRepository interface {
	// Registrar inserta el pago; devuelve domain.ErrPagoYaAplicado si el
	// payment_id ya estaba registrado.
	Registrar(ctx context.Context, pago *entity.PagoProcesado) error
	Existe(ctx context.Context, paymentID string) (bool, error)
}
