package traslados

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// CreateTrasladoUseCase alta de traslados con control de cupo mensual.
//
// Flujo para plan free:
//  1. leer el perfil y resolver el plan vigente (pago vencido degrada a free);
//  2. si el contador llegó al máximo, rechazar sin tocar nada;
//  3. reservar una unidad con un update condicional sobre el valor leído
//     (lock optimista: cero filas afectadas = otra petición ganó, conflicto);
//  4. insertar el traslado.
//
// Los pasos 3 y 4 corren en una transacción, así un insert fallido no deja el
// contador incrementado. Bajo concurrencia con el mismo valor leído, exactamente
// una petición reserva y la otra recibe ErrConflict para reintentar.
type CreateTrasladoUseCase struct {
	txRunner   TxRunner
	perfilRepo repository.PerfilRepository
}

// NewCreateTrasladoUseCase construye el caso de uso.
func NewCreateTrasladoUseCase(txRunner TxRunner, perfilRepo repository.PerfilRepository) *CreateTrasladoUseCase {
	return &CreateTrasladoUseCase{txRunner: txRunner, perfilRepo: perfilRepo}
}

// Create valida el cupo del plan, reserva una unidad y crea el traslado.
func (uc *CreateTrasladoUseCase) Create(ctx context.Context, userID, empresaID string, in dto.CreateTrasladoRequest) (*dto.TrasladoResponse, error) {
	if in.ChoferID == "" || in.MarcaModelo == "" {
		return nil, domain.ErrInvalidInput
	}

	perfil, err := uc.perfilRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	plan := perfil.PlanEfectivo(now)
	info := entity.Planes[plan]

	traslado := buildTraslado(empresaID, in, now)

	err = uc.txRunner.Run(ctx, func(
		perfilRepo repository.PerfilRepository,
		trasladoRepo repository.TrasladoRepository,
	) error {
		if info.TrasladosMax > 0 {
			if perfil.TrasladosMesActual >= info.TrasladosMax {
				return domain.ErrLimiteTraslados
			}
			ok, err := perfilRepo.ReservarTraslado(ctx, perfil.ID, perfil.TrasladosMesActual)
			if err != nil {
				return err
			}
			if !ok {
				// El contador ya no vale lo leído: otra petición reservó primero.
				return domain.ErrConflict
			}
		}
		return trasladoRepo.Create(traslado)
	})
	if err != nil {
		return nil, err
	}
	return toTrasladoResponse(traslado), nil
}

func buildTraslado(empresaID string, in dto.CreateTrasladoRequest, now time.Time) *entity.Traslado {
	t := &entity.Traslado{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		ChoferID:     in.ChoferID,
		MarcaModelo:  in.MarcaModelo,
		Es0KM:        in.Es0KM,
		ImporteTotal: in.ImporteTotal,
		Estado:       entity.EstadoPendiente,
		EstadoPago:   entity.PagoPendiente,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Un 0km no tiene matrícula todavía.
	if !in.Es0KM && in.Matricula != "" {
		t.Matricula = &in.Matricula
	}
	if in.Observaciones != "" {
		t.Observaciones = &in.Observaciones
	}
	if in.Desde != "" {
		t.Desde = &in.Desde
	}
	if in.Hasta != "" {
		t.Hasta = &in.Hasta
	}
	return t
}

func toTrasladoResponse(t *entity.Traslado) *dto.TrasladoResponse {
	if t == nil {
		return nil
	}
	return &dto.TrasladoResponse{
		ID:            t.ID,
		EmpresaID:     t.EmpresaID,
		ChoferID:      t.ChoferID,
		MarcaModelo:   t.MarcaModelo,
		Matricula:     t.Matricula,
		Es0KM:         t.Es0KM,
		ImporteTotal:  t.ImporteTotal,
		Observaciones: t.Observaciones,
		Desde:         t.Desde,
		Hasta:         t.Hasta,
		Estado:        t.Estado,
		EstadoPago:    t.EstadoPago,
		Fotos: dto.FotosTraslado{
			Frontal:  t.FotoFrontalURL,
			Lateral:  t.FotoLateralURL,
			Trasera:  t.FotoTraseraURL,
			Interior: t.FotoInteriorURL,
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
