package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/viagrua/viagrua-api/internal/application/auth"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePerfilRepo struct {
	repository.PerfilRepository
	porEmail map[string]*entity.Perfil
	porID    map[string]*entity.Perfil
	creados  []*entity.Perfil
}

func newFakePerfilRepo() *fakePerfilRepo {
	return &fakePerfilRepo{
		porEmail: map[string]*entity.Perfil{},
		porID:    map[string]*entity.Perfil{},
	}
}

func (f *fakePerfilRepo) Create(p *entity.Perfil) error {
	if _, ok := f.porEmail[p.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.porEmail[p.Email] = p
	f.porID[p.ID] = p
	f.creados = append(f.creados, p)
	return nil
}

func (f *fakePerfilRepo) GetByID(id string) (*entity.Perfil, error)       { return f.porID[id], nil }
func (f *fakePerfilRepo) GetByEmail(email string) (*entity.Perfil, error) { return f.porEmail[email], nil }

type fakeEmpresaRepo struct {
	repository.EmpresaRepository
	empresas map[string]*entity.Empresa
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{}}
}

func (f *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	f.empresas[e.ID] = e
	return nil
}

func (f *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) { return f.empresas[id], nil }

type fakeInvitacionRepo struct {
	repository.InvitacionRepository
	porCodigo map[string]*entity.Invitacion
	// marcarOK simula el update condicional: false = otro canje ganó la carrera.
	marcarOK bool
}

func newFakeInvitacionRepo() *fakeInvitacionRepo {
	return &fakeInvitacionRepo{porCodigo: map[string]*entity.Invitacion{}, marcarOK: true}
}

func (f *fakeInvitacionRepo) GetByCodigo(codigo string) (*entity.Invitacion, error) {
	return f.porCodigo[codigo], nil
}

func (f *fakeInvitacionRepo) MarcarUsada(id string) (bool, error) {
	if !f.marcarOK {
		return false, nil
	}
	for _, inv := range f.porCodigo {
		if inv.ID == id {
			if inv.Usado {
				return false, nil
			}
			inv.Usado = true
			return true, nil
		}
	}
	return false, nil
}

type fakeTxRunner struct {
	perfilRepo     *fakePerfilRepo
	invitacionRepo *fakeInvitacionRepo
}

func (f *fakeTxRunner) RunUnirse(_ context.Context, fn func(
	perfilRepo repository.PerfilRepository,
	invitacionRepo repository.InvitacionRepository,
) error) error {
	return fn(f.perfilRepo, f.invitacionRepo)
}

func buildAuthUC() (*auth.AuthUseCase, *fakePerfilRepo, *fakeEmpresaRepo, *fakeInvitacionRepo) {
	perfilRepo := newFakePerfilRepo()
	empresaRepo := newFakeEmpresaRepo()
	invitacionRepo := newFakeInvitacionRepo()
	runner := &fakeTxRunner{perfilRepo: perfilRepo, invitacionRepo: invitacionRepo}
	uc := auth.NewAuthUseCase(perfilRepo, empresaRepo, invitacionRepo, runner, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "viagrua-test",
	})
	return uc, perfilRepo, empresaRepo, invitacionRepo
}

func invitacionVigente(empresaID string) *entity.Invitacion {
	return &entity.Invitacion{
		ID:        "inv-1",
		EmpresaID: empresaID,
		Codigo:    "ABCD2345",
		ExpiresAt: time.Now().Add(48 * time.Hour),
		CreatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistro_CreaEmpresaYAdminFree(t *testing.T) {
	uc, perfilRepo, empresaRepo, _ := buildAuthUC()

	out, err := uc.Registro(dto.RegistroRequest{
		EmpresaNombre: "Grúas del Este",
		Nombre:        "Ana García",
		Email:         "ana@gruas.uy",
		Password:      "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RolAdmin, out.Perfil.Rol)
	assert.Equal(t, entity.PlanFree, out.Perfil.Plan)
	assert.Len(t, empresaRepo.empresas, 1)

	require.Len(t, perfilRepo.creados, 1)
	creado := perfilRepo.creados[0]
	assert.NotEqual(t, "password123", creado.PasswordHash, "el password nunca se guarda plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(creado.PasswordHash), []byte("password123")))
}

func TestRegistro_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := buildAuthUC()
	in := dto.RegistroRequest{EmpresaNombre: "G1", Nombre: "Ana", Email: "ana@gruas.uy", Password: "password123"}
	_, err := uc.Registro(in)
	require.NoError(t, err)

	_, err = uc.Registro(in)

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _, _ := buildAuthUC()
	_, err := uc.Registro(dto.RegistroRequest{EmpresaNombre: "G1", Nombre: "Ana", Email: "ana@gruas.uy", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@gruas.uy", Password: "otro-password"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _, _, _ := buildAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@gruas.uy", Password: "password123"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invitaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarInvitacion_Vigente_IncluyeEmpresa(t *testing.T) {
	uc, _, empresaRepo, invitacionRepo := buildAuthUC()
	empresaRepo.empresas["emp-1"] = &entity.Empresa{ID: "emp-1", Nombre: "Grúas del Este"}
	inv := invitacionVigente("emp-1")
	invitacionRepo.porCodigo[inv.Codigo] = inv

	out, err := uc.ValidarInvitacion("ABCD2345")

	require.NoError(t, err)
	assert.Equal(t, "emp-1", out.EmpresaID)
	assert.Equal(t, "Grúas del Este", out.EmpresaNombre)
	assert.False(t, out.Usado)
}

func TestValidarInvitacion_Usada(t *testing.T) {
	uc, _, _, invitacionRepo := buildAuthUC()
	inv := invitacionVigente("emp-1")
	inv.Usado = true
	invitacionRepo.porCodigo[inv.Codigo] = inv

	_, err := uc.ValidarInvitacion("ABCD2345")

	assert.ErrorIs(t, err, domain.ErrInvitacionUsada)
}

func TestValidarInvitacion_Expirada(t *testing.T) {
	uc, _, _, invitacionRepo := buildAuthUC()
	inv := invitacionVigente("emp-1")
	inv.ExpiresAt = time.Now().Add(-time.Hour)
	invitacionRepo.porCodigo[inv.Codigo] = inv

	_, err := uc.ValidarInvitacion("ABCD2345")

	assert.ErrorIs(t, err, domain.ErrInvitacionExpirada)
}

func TestValidarInvitacion_Inexistente(t *testing.T) {
	uc, _, _, _ := buildAuthUC()

	_, err := uc.ValidarInvitacion("NOEXISTE")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnirse_CreaChoferYMarcaUsada(t *testing.T) {
	uc, perfilRepo, _, invitacionRepo := buildAuthUC()
	inv := invitacionVigente("emp-1")
	invitacionRepo.porCodigo[inv.Codigo] = inv

	out, err := uc.Unirse(context.Background(), dto.UnirseRequest{
		Codigo:   "ABCD2345",
		Nombre:   "Bruno López",
		Email:    "bruno@gruas.uy",
		Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RolChofer, out.Perfil.Rol)
	assert.Equal(t, "emp-1", out.Perfil.EmpresaID)
	assert.True(t, inv.Usado)
	assert.Len(t, perfilRepo.creados, 1)
}

// Canje concurrente: el update condicional falla y no se crea el perfil.
func TestUnirse_CarreraPorElCodigo(t *testing.T) {
	uc, perfilRepo, _, invitacionRepo := buildAuthUC()
	inv := invitacionVigente("emp-1")
	invitacionRepo.porCodigo[inv.Codigo] = inv
	invitacionRepo.marcarOK = false

	_, err := uc.Unirse(context.Background(), dto.UnirseRequest{
		Codigo:   "ABCD2345",
		Nombre:   "Bruno López",
		Email:    "bruno@gruas.uy",
		Password: "secreto1",
	})

	assert.ErrorIs(t, err, domain.ErrInvitacionUsada)
	assert.Empty(t, perfilRepo.creados, "si la invitación ya se canjeó no debe crearse el perfil")
}

func TestUnirse_InvitacionVencida(t *testing.T) {
	uc, perfilRepo, _, invitacionRepo := buildAuthUC()
	inv := invitacionVigente("emp-1")
	inv.ExpiresAt = time.Now().Add(-time.Minute)
	invitacionRepo.porCodigo[inv.Codigo] = inv

	_, err := uc.Unirse(context.Background(), dto.UnirseRequest{
		Codigo:   "ABCD2345",
		Nombre:   "Bruno López",
		Email:    "bruno@gruas.uy",
		Password: "secreto1",
	})

	assert.ErrorIs(t, err, domain.ErrInvitacionExpirada)
	assert.Empty(t, perfilRepo.creados)
}
