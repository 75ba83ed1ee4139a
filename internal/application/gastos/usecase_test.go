package gastos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/application/gastos"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
	"github.com/viagrua/viagrua-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeGastoRepo struct {
	repository.GastoRepository
	porID    map[string]*entity.Gasto
	borrados []string
}

func newFakeGastoRepo() *fakeGastoRepo {
	return &fakeGastoRepo{porID: map[string]*entity.Gasto{}}
}

func (f *fakeGastoRepo) Create(g *entity.Gasto) error {
	f.porID[g.ID] = g
	return nil
}

func (f *fakeGastoRepo) GetByID(id string) (*entity.Gasto, error) { return f.porID[id], nil }

func (f *fakeGastoRepo) Delete(id string) error {
	delete(f.porID, id)
	f.borrados = append(f.borrados, id)
	return nil
}

func gastoDe(autorID, empresaID string) *entity.Gasto {
	return &entity.Gasto{
		ID:        "gasto-1",
		EmpresaID: empresaID,
		AutorID:   autorID,
		Tipo:      "combustible",
		Importe:   decimal.NewFromInt(1500),
		Fecha:     time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateGasto_RegistraConAutor(t *testing.T) {
	repo := newFakeGastoRepo()
	uc := gastos.NewGastoUseCase(repo)

	out, err := uc.Create("chofer-1", "emp-1", dto.CreateGastoRequest{
		Tipo:    "peaje",
		Importe: decimal.NewFromInt(240),
		Fecha:   "2026-08-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "chofer-1", out.AutorID, "el solicitante queda como autor")
	assert.Equal(t, "emp-1", out.EmpresaID)
	assert.Equal(t, "2026-08-15", out.Fecha.Format("2006-01-02"))
	assert.Len(t, repo.porID, 1)
}

func TestCreateGasto_SinFecha_AsumeHoy(t *testing.T) {
	uc := gastos.NewGastoUseCase(newFakeGastoRepo())

	out, err := uc.Create("chofer-1", "emp-1", dto.CreateGastoRequest{
		Tipo:    "combustible",
		Importe: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), out.Fecha, time.Minute)
}

func TestCreateGasto_ImporteNoPositivo(t *testing.T) {
	uc := gastos.NewGastoUseCase(newFakeGastoRepo())

	_, err := uc.Create("chofer-1", "emp-1", dto.CreateGastoRequest{
		Tipo:    "peaje",
		Importe: decimal.Zero,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateGasto_FechaInvalida(t *testing.T) {
	uc := gastos.NewGastoUseCase(newFakeGastoRepo())

	_, err := uc.Create("chofer-1", "emp-1", dto.CreateGastoRequest{
		Tipo:    "peaje",
		Importe: decimal.NewFromInt(100),
		Fecha:   "15/08/2026",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El autor puede borrar su propio gasto aunque sea chofer.
func TestDeleteGasto_AutorPuedeBorrar(t *testing.T) {
	repo := newFakeGastoRepo()
	repo.porID["gasto-1"] = gastoDe("chofer-1", "emp-1")
	uc := gastos.NewGastoUseCase(repo)

	err := uc.Delete("chofer-1", "emp-1", entity.RolChofer, "gasto-1")

	require.NoError(t, err)
	assert.Contains(t, repo.borrados, "gasto-1")
}

// Un admin puede borrar gastos ajenos de su empresa.
func TestDeleteGasto_AdminPuedeBorrarAjeno(t *testing.T) {
	repo := newFakeGastoRepo()
	repo.porID["gasto-1"] = gastoDe("chofer-1", "emp-1")
	uc := gastos.NewGastoUseCase(repo)

	err := uc.Delete("admin-1", "emp-1", entity.RolAdmin, "gasto-1")

	require.NoError(t, err)
	assert.Contains(t, repo.borrados, "gasto-1")
}

// Un chofer no puede borrar gastos de otro.
func TestDeleteGasto_ChoferNoBorraAjeno(t *testing.T) {
	repo := newFakeGastoRepo()
	repo.porID["gasto-1"] = gastoDe("chofer-1", "emp-1")
	uc := gastos.NewGastoUseCase(repo)

	err := uc.Delete("chofer-2", "emp-1", entity.RolChofer, "gasto-1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.borrados)
}

// Los gastos de otra empresa no son visibles ni borrables.
func TestDeleteGasto_OtraEmpresa(t *testing.T) {
	repo := newFakeGastoRepo()
	repo.porID["gasto-1"] = gastoDe("chofer-1", "emp-ajena")
	uc := gastos.NewGastoUseCase(repo)

	err := uc.Delete("admin-1", "emp-1", entity.RolAdmin, "gasto-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.borrados)
}
