package gastos

import (
	"time"

	"github.com/google/uuid"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// GastoUseCase libro de gastos de la empresa.
type GastoUseCase struct {
	gastoRepo repository.GastoRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(gastoRepo repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{gastoRepo: gastoRepo}
}

// Create registra un gasto con el solicitante como autor.
// Fecha vacía = hoy; el importe debe ser positivo.
func (uc *GastoUseCase) Create(userID, empresaID string, in dto.CreateGastoRequest) (*dto.GastoResponse, error) {
	if in.Tipo == "" || !in.Importe.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	fecha := time.Now()
	if in.Fecha != "" {
		parsed, err := time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fecha = parsed
	}
	gasto := &entity.Gasto{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		AutorID:   userID,
		Tipo:      in.Tipo,
		Importe:   in.Importe,
		Fecha:     fecha,
		CreatedAt: time.Now(),
	}
	if in.Descripcion != "" {
		gasto.Descripcion = &in.Descripcion
	}
	if err := uc.gastoRepo.Create(gasto); err != nil {
		return nil, err
	}
	return toGastoResponse(gasto), nil
}

// List gastos de la empresa ordenados por fecha descendente.
func (uc *GastoUseCase) List(empresaID string, limit, offset int) (*dto.GastoListResponse, error) {
	list, err := uc.gastoRepo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.GastoListResponse{Items: make([]dto.GastoResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, g := range list {
		out.Items = append(out.Items, *toGastoResponse(g))
	}
	return out, nil
}

// Delete elimina un gasto: solo el autor o un admin de la empresa.
func (uc *GastoUseCase) Delete(userID, empresaID, rol, gastoID string) error {
	gasto, err := uc.gastoRepo.GetByID(gastoID)
	if err != nil {
		return err
	}
	if gasto == nil || gasto.EmpresaID != empresaID {
		return domain.ErrNotFound
	}
	if gasto.AutorID != userID && rol != entity.RolAdmin {
		return domain.ErrForbidden
	}
	return uc.gastoRepo.Delete(gasto.ID)
}

func toGastoResponse(g *entity.Gasto) *dto.GastoResponse {
	return &dto.GastoResponse{
		ID:          g.ID,
		EmpresaID:   g.EmpresaID,
		AutorID:     g.AutorID,
		Tipo:        g.Tipo,
		Importe:     g.Importe,
		Fecha:       g.Fecha,
		Descripcion: g.Descripcion,
		CreatedAt:   g.CreatedAt,
	}
}
