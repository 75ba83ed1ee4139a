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

var _ repository.TrasladoRepository = (*TrasladoRepo)(nil)

const trasladoColumns = `id, empresa_id, chofer_id, marca_modelo, matricula, es_0km, importe_total,
		observaciones, desde, hasta, estado, estado_pago,
		foto_frontal_url, foto_lateral_url, foto_trasera_url, foto_interior_url,
		created_at, updated_at`

// TrasladoRepo implementación de TrasladoRepository sobre PostgreSQL (usable con pool o tx).
type TrasladoRepo struct {
	q Querier
}

// NewTrasladoRepository construye el adaptador de persistencia para traslados. Pasar pool o tx (Querier).
func NewTrasladoRepository(q Querier) *TrasladoRepo {
	return &TrasladoRepo{q: q}
}

// Create persiste un nuevo traslado.
func (r *TrasladoRepo) Create(t *entity.Traslado) error {
	query := `
		INSERT INTO traslados (id, empresa_id, chofer_id, marca_modelo, matricula, es_0km,
			importe_total, observaciones, desde, hasta, estado, estado_pago, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.EmpresaID, t.ChoferID, t.MarcaModelo, t.Matricula, t.Es0KM,
		t.ImporteTotal, t.Observaciones, t.Desde, t.Hasta, t.Estado, t.EstadoPago,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert traslado: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID.
func (r *TrasladoRepo) GetByID(id string) (*entity.Traslado, error) {
	query := `SELECT ` + trasladoColumns + ` FROM traslados WHERE id = $1`
	var t entity.Traslado
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.EmpresaID, &t.ChoferID, &t.MarcaModelo, &t.Matricula, &t.Es0KM,
		&t.ImporteTotal, &t.Observaciones, &t.Desde, &t.Hasta, &t.Estado, &t.EstadoPago,
		&t.FotoFrontalURL, &t.FotoLateralURL, &t.FotoTraseraURL, &t.FotoInteriorURL,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get traslado by id: %w", err)
	}
	return &t, nil
}

// ListByEmpresa lista traslados de la empresa, más recientes primero. Estado vacío = todos.
func (r *TrasladoRepo) ListByEmpresa(empresaID, estado string, limit, offset int) ([]*entity.Traslado, error) {
	query := `SELECT ` + trasladoColumns + `
		FROM traslados
		WHERE empresa_id = $1 AND ($2 = '' OR estado = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, empresaID, estado, limit, offset)
}

// ListByChofer lista los traslados asignados a un chofer, más recientes primero. Estado vacío = todos.
func (r *TrasladoRepo) ListByChofer(choferID, estado string, limit, offset int) ([]*entity.Traslado, error) {
	query := `SELECT ` + trasladoColumns + `
		FROM traslados
		WHERE chofer_id = $1 AND ($2 = '' OR estado = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, choferID, estado, limit, offset)
}

// UpdateEstado cambia el estado operativo del traslado.
func (r *TrasladoRepo) UpdateEstado(id, estado string) error {
	return r.updateCampo(id, `UPDATE traslados SET estado = $2, updated_at = now() WHERE id = $1`, estado, "update estado")
}

// UpdateEstadoPago cambia el estado de pago del traslado.
func (r *TrasladoRepo) UpdateEstadoPago(id, estadoPago string) error {
	return r.updateCampo(id, `UPDATE traslados SET estado_pago = $2, updated_at = now() WHERE id = $1`, estadoPago, "update estado_pago")
}

// UpdateFoto guarda la URL pública de una foto en la columna correspondiente al tipo.
func (r *TrasladoRepo) UpdateFoto(id, tipo, url string) error {
	var col string
	switch tipo {
	case entity.FotoFrontal:
		col = "foto_frontal_url"
	case entity.FotoLateral:
		col = "foto_lateral_url"
	case entity.FotoTrasera:
		col = "foto_trasera_url"
	case entity.FotoInterior:
		col = "foto_interior_url"
	default:
		return domain.ErrInvalidInput
	}
	query := fmt.Sprintf(`UPDATE traslados SET %s = $2, updated_at = now() WHERE id = $1`, col)
	return r.updateCampo(id, query, url, "update foto")
}

// ReasignarActivos mueve los traslados no completados de un chofer a otro perfil.
func (r *TrasladoRepo) ReasignarActivos(deChoferID, aPerfilID string) (int64, error) {
	query := `
		UPDATE traslados SET chofer_id = $2, updated_at = now()
		WHERE chofer_id = $1 AND estado <> 'completado'`
	tag, err := r.q.Exec(context.Background(), query, deChoferID, aPerfilID)
	if err != nil {
		return 0, fmt.Errorf("reasignar traslados: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina un traslado por ID.
func (r *TrasladoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM traslados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete traslado: %w", err)
	}
	return nil
}

// Resumen cuenta los traslados de la empresa por estado.
func (r *TrasladoRepo) Resumen(empresaID string) (*entity.ResumenTraslados, error) {
	query := `
		SELECT
			count(*) FILTER (WHERE estado = 'pendiente'),
			count(*) FILTER (WHERE estado = 'en_curso'),
			count(*) FILTER (WHERE estado = 'completado')
		FROM traslados WHERE empresa_id = $1`
	var res entity.ResumenTraslados
	err := r.q.QueryRow(context.Background(), query, empresaID).Scan(
		&res.Pendientes, &res.EnCurso, &res.Completados,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen traslados: %w", err)
	}
	return &res, nil
}

func (r *TrasladoRepo) list(query string, args ...any) ([]*entity.Traslado, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list traslados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Traslado
	for rows.Next() {
		var t entity.Traslado
		if err := rows.Scan(
			&t.ID, &t.EmpresaID, &t.ChoferID, &t.MarcaModelo, &t.Matricula, &t.Es0KM,
			&t.ImporteTotal, &t.Observaciones, &t.Desde, &t.Hasta, &t.Estado, &t.EstadoPago,
			&t.FotoFrontalURL, &t.FotoLateralURL, &t.FotoTraseraURL, &t.FotoInteriorURL,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan traslado: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TrasladoRepo) updateCampo(id, query, valor, op string) error {
	tag, err := r.q.Exec(context.Background(), query, id, valor)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
