package traslados

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// TrasladoUseCase consultas y transiciones sobre traslados existentes.
// El chofer asignado y el admin de la empresa pueden ver y transicionar;
// borrar es solo de admin.
type TrasladoUseCase struct {
	trasladoRepo repository.TrasladoRepository
	perfilRepo   repository.PerfilRepository
	empresaRepo  repository.EmpresaRepository
	storage      FotoStorage
	comprobantes ComprobanteGenerator
}

// NewTrasladoUseCase construye el caso de uso.
func NewTrasladoUseCase(
	trasladoRepo repository.TrasladoRepository,
	perfilRepo repository.PerfilRepository,
	empresaRepo repository.EmpresaRepository,
	storage FotoStorage,
	comprobantes ComprobanteGenerator,
) *TrasladoUseCase {
	return &TrasladoUseCase{
		trasladoRepo: trasladoRepo,
		perfilRepo:   perfilRepo,
		empresaRepo:  empresaRepo,
		storage:      storage,
		comprobantes: comprobantes,
	}
}

// List lista traslados: el admin ve los de su empresa, el chofer solo los suyos.
func (uc *TrasladoUseCase) List(userID, empresaID, rol, estado string, limit, offset int) (*dto.TrasladoListResponse, error) {
	if estado != "" && !entity.EstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	var (
		list []*entity.Traslado
		err  error
	)
	if rol == entity.RolAdmin {
		list, err = uc.trasladoRepo.ListByEmpresa(empresaID, estado, limit, offset)
	} else {
		list, err = uc.trasladoRepo.ListByChofer(userID, estado, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.TrasladoListResponse{Items: make([]dto.TrasladoResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, t := range list {
		out.Items = append(out.Items, *toTrasladoResponse(t))
	}
	return out, nil
}

// Resumen conteos por estado para el tablero de la empresa.
func (uc *TrasladoUseCase) Resumen(empresaID string) (*dto.ResumenTrasladosResponse, error) {
	r, err := uc.trasladoRepo.Resumen(empresaID)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenTrasladosResponse{
		Pendientes:  r.Pendientes,
		EnCurso:     r.EnCurso,
		Completados: r.Completados,
	}, nil
}

// Get devuelve un traslado si el solicitante puede verlo.
func (uc *TrasladoUseCase) Get(userID, empresaID, rol, trasladoID string) (*dto.TrasladoResponse, error) {
	t, err := uc.autorizar(userID, empresaID, rol, trasladoID)
	if err != nil {
		return nil, err
	}
	return toTrasladoResponse(t), nil
}

// CambiarEstado transición del estado operativo (admin o chofer asignado).
func (uc *TrasladoUseCase) CambiarEstado(userID, empresaID, rol, trasladoID, estado string) (*dto.TrasladoResponse, error) {
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.autorizar(userID, empresaID, rol, trasladoID)
	if err != nil {
		return nil, err
	}
	if err := uc.trasladoRepo.UpdateEstado(t.ID, estado); err != nil {
		return nil, err
	}
	t.Estado = estado
	t.UpdatedAt = time.Now()
	return toTrasladoResponse(t), nil
}

// CambiarEstadoPago transición del estado de pago (admin o chofer asignado).
func (uc *TrasladoUseCase) CambiarEstadoPago(userID, empresaID, rol, trasladoID, estadoPago string) (*dto.TrasladoResponse, error) {
	if !entity.EstadoPagoValido(estadoPago) {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.autorizar(userID, empresaID, rol, trasladoID)
	if err != nil {
		return nil, err
	}
	if err := uc.trasladoRepo.UpdateEstadoPago(t.ID, estadoPago); err != nil {
		return nil, err
	}
	t.EstadoPago = estadoPago
	t.UpdatedAt = time.Now()
	return toTrasladoResponse(t), nil
}

// SubirFoto sube una foto al storage y guarda la URL en la columna correspondiente.
func (uc *TrasladoUseCase) SubirFoto(ctx context.Context, userID, empresaID, rol, trasladoID, tipo, contentType string, body io.Reader, size int64) (*dto.FotoSubidaResponse, error) {
	if !entity.TipoFotoValido(tipo) {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.autorizar(userID, empresaID, rol, trasladoID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s/%s.jpg", t.ID, tipo)
	url, err := uc.storage.Subir(ctx, key, contentType, body, size)
	if err != nil {
		return nil, err
	}
	if err := uc.trasladoRepo.UpdateFoto(t.ID, tipo, url); err != nil {
		return nil, err
	}
	return &dto.FotoSubidaResponse{Tipo: tipo, URL: url}, nil
}

// Comprobante genera el PDF del traslado para el solicitante autorizado.
func (uc *TrasladoUseCase) Comprobante(ctx context.Context, userID, empresaID, rol, trasladoID string) ([]byte, error) {
	t, err := uc.autorizar(userID, empresaID, rol, trasladoID)
	if err != nil {
		return nil, err
	}
	empresa, err := uc.empresaRepo.GetByID(t.EmpresaID)
	if err != nil {
		return nil, err
	}
	chofer, err := uc.perfilRepo.GetByID(t.ChoferID)
	if err != nil {
		return nil, err
	}
	return uc.comprobantes.GenerarComprobante(ctx, t, empresa, chofer)
}

// Delete elimina un traslado (solo admin) y limpia sus fotos del storage.
// La limpieza del storage es best-effort: un fallo no revierte el borrado de la fila.
func (uc *TrasladoUseCase) Delete(ctx context.Context, empresaID, rol, trasladoID string) error {
	if rol != entity.RolAdmin {
		return domain.ErrForbidden
	}
	t, err := uc.trasladoRepo.GetByID(trasladoID)
	if err != nil {
		return err
	}
	if t == nil || t.EmpresaID != empresaID {
		return domain.ErrNotFound
	}
	if err := uc.trasladoRepo.Delete(t.ID); err != nil {
		return err
	}
	_ = uc.storage.EliminarPrefijo(ctx, t.ID+"/")
	return nil
}

// autorizar carga el traslado y verifica tenencia: misma empresa, y si el
// solicitante es chofer, que sea el asignado.
func (uc *TrasladoUseCase) autorizar(userID, empresaID, rol, trasladoID string) (*entity.Traslado, error) {
	t, err := uc.trasladoRepo.GetByID(trasladoID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if rol != entity.RolAdmin && t.ChoferID != userID {
		return nil, domain.ErrForbidden
	}
	return t, nil
}
