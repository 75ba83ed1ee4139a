package traslados

import (
	"context"
	"io"

	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// TxRunner ejecuta la reserva de cupo y el alta del traslado en una sola
// transacción: si el insert falla, el rollback revierte el incremento del
// contador.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		perfilRepo repository.PerfilRepository,
		trasladoRepo repository.TrasladoRepository,
	) error) error
}

// FotoStorage almacena blobs de fotos y devuelve su URL pública.
// Las claves siguen el esquema <traslado_id>/<tipo>.jpg; EliminarPrefijo
// limpia todas las fotos de un traslado al borrarlo (best-effort).
type FotoStorage interface {
	Subir(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	EliminarPrefijo(ctx context.Context, prefix string) error
}

// ComprobanteGenerator genera el PDF del comprobante de un traslado.
type ComprobanteGenerator interface {
	GenerarComprobante(ctx context.Context, traslado *entity.Traslado, empresa *entity.Empresa, chofer *entity.Perfil) ([]byte, error)
}
