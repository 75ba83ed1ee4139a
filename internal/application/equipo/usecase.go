package equipo

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// Vigencia de un código de invitación.
const invitacionTTL = 7 * 24 * time.Hour

const codigoLen = 8
const codigoAlfabeto = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // sin 0/O ni 1/I

// TxRunner ejecuta la expulsión de un chofer (reasignar traslados + borrar perfil)
// en una transacción.
type TxRunner interface {
	RunExpulsion(ctx context.Context, fn func(
		perfilRepo repository.PerfilRepository,
		trasladoRepo repository.TrasladoRepository,
	) error) error
}

// EquipoUseCase gestión del equipo de choferes: listado, invitaciones y expulsión.
type EquipoUseCase struct {
	perfilRepo     repository.PerfilRepository
	invitacionRepo repository.InvitacionRepository
	txRunner       TxRunner
}

// NewEquipoUseCase construye el caso de uso.
func NewEquipoUseCase(
	perfilRepo repository.PerfilRepository,
	invitacionRepo repository.InvitacionRepository,
	txRunner TxRunner,
) *EquipoUseCase {
	return &EquipoUseCase{perfilRepo: perfilRepo, invitacionRepo: invitacionRepo, txRunner: txRunner}
}

// ListChoferes lista los choferes de la empresa.
func (uc *EquipoUseCase) ListChoferes(empresaID string) ([]dto.ChoferResponse, error) {
	list, err := uc.perfilRepo.ListChoferes(empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChoferResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ChoferResponse{
			ID:             p.ID,
			NombreCompleto: p.NombreCompleto,
			Email:          p.Email,
			CreatedAt:      p.CreatedAt,
		})
	}
	return out, nil
}

// CrearInvitacion genera un código de un solo uso con vencimiento a 7 días.
// El plan free no habilita choferes: se rechaza con ErrPlanSinChoferes.
func (uc *EquipoUseCase) CrearInvitacion(adminID, empresaID string) (*dto.InvitacionResponse, error) {
	admin, err := uc.perfilRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUserNotFound
	}
	if !admin.PuedeInvitarChoferes(time.Now()) {
		return nil, domain.ErrPlanSinChoferes
	}

	codigo, err := generarCodigo()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inv := &entity.Invitacion{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Codigo:    codigo,
		ExpiresAt: now.Add(invitacionTTL),
		CreatedAt: now,
	}
	if err := uc.invitacionRepo.Create(inv); err != nil {
		return nil, err
	}
	return &dto.InvitacionResponse{
		Codigo:    inv.Codigo,
		EmpresaID: inv.EmpresaID,
		Usado:     inv.Usado,
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

// ExpulsarChofer saca un chofer del equipo: sus traslados no completados pasan
// al admin que expulsa y el perfil se borra, todo en una transacción.
func (uc *EquipoUseCase) ExpulsarChofer(ctx context.Context, adminID, empresaID, choferID string) (*dto.ExpulsionResponse, error) {
	chofer, err := uc.perfilRepo.GetByID(choferID)
	if err != nil {
		return nil, err
	}
	if chofer == nil || chofer.EmpresaID != empresaID {
		return nil, domain.ErrNotFound
	}
	if chofer.Rol != entity.RolChofer {
		return nil, domain.ErrForbidden
	}

	var reasignados int64
	err = uc.txRunner.RunExpulsion(ctx, func(
		perfilRepo repository.PerfilRepository,
		trasladoRepo repository.TrasladoRepository,
	) error {
		n, err := trasladoRepo.ReasignarActivos(chofer.ID, adminID)
		if err != nil {
			return err
		}
		reasignados = n
		return perfilRepo.Delete(chofer.ID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ExpulsionResponse{ChoferID: chofer.ID, TrasladosReasignados: reasignados}, nil
}

// generarCodigo produce un código aleatorio de 8 caracteres en mayúsculas.
func generarCodigo() (string, error) {
	buf := make([]byte, codigoLen)
	max := big.NewInt(int64(len(codigoAlfabeto)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codigoAlfabeto[n.Int64()]
	}
	return string(buf), nil
}
