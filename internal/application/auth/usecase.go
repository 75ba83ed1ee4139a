package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
	"github.com/viagrua/viagrua-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta el canje de invitación (alta de chofer + marcar usada) en una transacción.
type TxRunner interface {
	RunUnirse(ctx context.Context, fn func(
		perfilRepo repository.PerfilRepository,
		invitacionRepo repository.InvitacionRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro de empresa, login y canje de invitaciones.
type AuthUseCase struct {
	perfilRepo     repository.PerfilRepository
	empresaRepo    repository.EmpresaRepository
	invitacionRepo repository.InvitacionRepository
	txRunner       TxRunner
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	perfilRepo repository.PerfilRepository,
	empresaRepo repository.EmpresaRepository,
	invitacionRepo repository.InvitacionRepository,
	txRunner TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		perfilRepo:     perfilRepo,
		empresaRepo:    empresaRepo,
		invitacionRepo: invitacionRepo,
		txRunner:       txRunner,
		jwtCfg:         jwtCfg,
	}
}

// Registro crea la empresa y su perfil admin en plan free. Devuelve token + perfil.
func (uc *AuthUseCase) Registro(in dto.RegistroRequest) (*dto.LoginResponse, error) {
	existing, _ := uc.perfilRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nombre:    in.EmpresaNombre,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.empresaRepo.Create(empresa); err != nil {
		return nil, err
	}
	perfil := &entity.Perfil{
		ID:             uuid.New().String(),
		EmpresaID:      empresa.ID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		NombreCompleto: in.Nombre,
		Rol:            entity.RolAdmin,
		Plan:           entity.PlanFree,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.perfilRepo.Create(perfil); err != nil {
		return nil, err
	}
	return uc.loginResponse(perfil)
}

// Login verifica email/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	perfil, err := uc.perfilRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(perfil.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.loginResponse(perfil)
}

// ValidarInvitacion consulta una invitación por código para la pantalla pública de canje.
// Devuelve ErrInvitacionUsada / ErrInvitacionExpirada según corresponda.
func (uc *AuthUseCase) ValidarInvitacion(codigo string) (*dto.InvitacionResponse, error) {
	inv, err := uc.invitacionRepo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Usado {
		return nil, domain.ErrInvitacionUsada
	}
	if !inv.Vigente(time.Now()) {
		return nil, domain.ErrInvitacionExpirada
	}
	out := &dto.InvitacionResponse{
		Codigo:    inv.Codigo,
		EmpresaID: inv.EmpresaID,
		Usado:     inv.Usado,
		ExpiresAt: inv.ExpiresAt,
	}
	if empresa, err := uc.empresaRepo.GetByID(inv.EmpresaID); err == nil && empresa != nil {
		out.EmpresaNombre = empresa.Nombre
	}
	return out, nil
}

// Unirse canjea una invitación: valida el código (usado o vencido se rechaza
// sin importar el resto del formulario), crea el perfil chofer y marca la
// invitación como usada, todo dentro de una transacción.
func (uc *AuthUseCase) Unirse(ctx context.Context, in dto.UnirseRequest) (*dto.LoginResponse, error) {
	inv, err := uc.invitacionRepo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Usado {
		return nil, domain.ErrInvitacionUsada
	}
	if !inv.Vigente(time.Now()) {
		return nil, domain.ErrInvitacionExpirada
	}

	existing, _ := uc.perfilRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	perfil := &entity.Perfil{
		ID:             uuid.New().String(),
		EmpresaID:      inv.EmpresaID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		NombreCompleto: in.Nombre,
		Rol:            entity.RolChofer,
		Plan:           entity.PlanFree,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunUnirse(ctx, func(
		perfilRepo repository.PerfilRepository,
		invitacionRepo repository.InvitacionRepository,
	) error {
		ok, err := invitacionRepo.MarcarUsada(inv.ID)
		if err != nil {
			return err
		}
		if !ok {
			// Otro canje ganó la carrera: la invitación es de un solo uso.
			return domain.ErrInvitacionUsada
		}
		return perfilRepo.Create(perfil)
	})
	if err != nil {
		return nil, err
	}
	return uc.loginResponse(perfil)
}

// Perfil devuelve el perfil autenticado con su plan vigente y cupo restante.
func (uc *AuthUseCase) Perfil(userID string) (*dto.PerfilResponse, error) {
	perfil, err := uc.perfilRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, domain.ErrUserNotFound
	}
	return toPerfilResponse(perfil), nil
}

func (uc *AuthUseCase) loginResponse(perfil *entity.Perfil) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, perfil.ID, perfil.EmpresaID, perfil.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Perfil: *toPerfilResponse(perfil),
	}, nil
}

func toPerfilResponse(p *entity.Perfil) *dto.PerfilResponse {
	if p == nil {
		return nil
	}
	now := time.Now()
	return &dto.PerfilResponse{
		ID:                 p.ID,
		EmpresaID:          p.EmpresaID,
		Email:              p.Email,
		NombreCompleto:     p.NombreCompleto,
		Rol:                p.Rol,
		Plan:               p.Plan,
		PlanEfectivo:       p.PlanEfectivo(now),
		PlanRenovacion:     p.PlanRenovacion,
		TrasladosMesActual: p.TrasladosMesActual,
		CupoRestante:       p.CupoDisponible(now),
		CreatedAt:          p.CreatedAt,
	}
}
