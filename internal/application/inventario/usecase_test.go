package inventario_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botica-dev/botica-api/internal/application/dto"
	appinv "github.com/botica-dev/botica-api/internal/application/inventario"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
)

const horizonteTest = 30 // días de la ventana "por vencer"

var errConsulta = errors.New("consulta fallida")

type fakeMedicamentoRepo struct{ items map[string]*entity.Medicamento }

func (f *fakeMedicamentoRepo) Create(m *entity.Medicamento) error { f.items[m.ID] = m; return nil }
func (f *fakeMedicamentoRepo) GetByID(id string) (*entity.Medicamento, error) {
	return f.items[id], nil
}
func (f *fakeMedicamentoRepo) GetByCodigo(string) (*entity.Medicamento, error) { return nil, nil }
func (f *fakeMedicamentoRepo) List(int, int) ([]*entity.Medicamento, error)    { return nil, nil }
func (f *fakeMedicamentoRepo) Update(*entity.Medicamento) error                { return nil }
func (f *fakeMedicamentoRepo) Delete(string) error                             { return nil }

type fakeLoteRepo struct{ items map[string]*entity.Lote }

func (f *fakeLoteRepo) Create(l *entity.Lote) error             { f.items[l.ID] = l; return nil }
func (f *fakeLoteRepo) GetByID(id string) (*entity.Lote, error) { return f.items[id], nil }
func (f *fakeLoteRepo) ListByMedicamento(string, int, int) ([]*entity.Lote, error) {
	return nil, nil
}
func (f *fakeLoteRepo) List(int, int) ([]*entity.Lote, error) { return nil, nil }
func (f *fakeLoteRepo) Update(*entity.Lote) error             { return nil }
func (f *fakeLoteRepo) Delete(string) error                   { return nil }

type fakeDistritoRepo struct{ items map[string]*entity.Distrito }

func (f *fakeDistritoRepo) Create(d *entity.Distrito) error         { f.items[d.ID] = d; return nil }
func (f *fakeDistritoRepo) GetByID(id string) (*entity.Distrito, error) { return f.items[id], nil }
func (f *fakeDistritoRepo) List(int, int) ([]*entity.Distrito, error)   { return nil, nil }
func (f *fakeDistritoRepo) Update(*entity.Distrito) error               { return nil }
func (f *fakeDistritoRepo) Delete(string) error                         { return nil }

func setupInventarioUC(t *testing.T) (*appinv.InventarioUseCase, *fakeInvRepo) {
	t.Helper()
	invRepo := newFakeInvRepo()
	medRepo := &fakeMedicamentoRepo{items: map[string]*entity.Medicamento{
		"med-1": {ID: "med-1", Codigo: "PARA500", Nombre: "Paracetamol 500mg"},
	}}
	loteRepo := &fakeLoteRepo{items: map[string]*entity.Lote{
		// lote-1 vence lejos; lote-2 dentro del horizonte; lote-3 ya venció.
		"lote-1": {ID: "lote-1", MedicamentoID: "med-1", Codigo: "L-001", FechaVencimiento: time.Now().AddDate(1, 0, 0)},
		"lote-2": {ID: "lote-2", MedicamentoID: "med-1", Codigo: "L-002", FechaVencimiento: time.Now().AddDate(0, 0, 10)},
		"lote-3": {ID: "lote-3", MedicamentoID: "med-1", Codigo: "L-003", FechaVencimiento: time.Now().AddDate(0, 0, -1)},
	}}
	distRepo := &fakeDistritoRepo{items: map[string]*entity.Distrito{
		"dist-1": {ID: "dist-1", Nombre: "Miraflores"},
	}}
	return appinv.NewInventarioUseCase(invRepo, medRepo, loteRepo, distRepo, horizonteTest), invRepo
}

func TestInventarioCreate_EstadoInicialDerivado(t *testing.T) {
	uc, _ := setupInventarioUC(t)

	resp, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-1", DistritoID: "dist-1",
		CantidadDisponible: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PuntoReordenDefault, resp.PuntoReorden, "punto de reorden por defecto")
	assert.Equal(t, entity.EstadoDisponible, resp.Estado)
}

func TestInventarioCreate_TripletaDuplicada(t *testing.T) {
	uc, _ := setupInventarioUC(t)

	_, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-1", DistritoID: "dist-1", CantidadDisponible: 10,
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-1", DistritoID: "dist-1", CantidadDisponible: 5,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El estado inicial también mira el vencimiento del lote, no solo la cantidad.
func TestInventarioCreate_EstadoInicialPorVencimiento(t *testing.T) {
	uc, _ := setupInventarioUC(t)

	porVencer, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-2", DistritoID: "dist-1",
		CantidadDisponible: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoAmarillo, porVencer.Estado, "lote dentro del horizonte nace AMARILLO")

	vencido, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-3", DistritoID: "dist-1",
		CantidadDisponible: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoVencido, vencido.Estado, "lote caducado nace VENCIDO")
}

// Un fallo de consulta en el chequeo de tripleta no debe leerse como "no existe".
func TestInventarioCreate_ErrorDeConsultaSePropaga(t *testing.T) {
	uc, invRepo := setupInventarioUC(t)
	invRepo.errGetByClave = errConsulta

	_, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-1", DistritoID: "dist-1",
		CantidadDisponible: 1,
	})
	assert.ErrorIs(t, err, errConsulta)
}

func TestInventarioCreate_ReferenciasInexistentes(t *testing.T) {
	uc, _ := setupInventarioUC(t)

	_, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-x", LoteID: "lote-1", DistritoID: "dist-1", CantidadDisponible: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventarioUpdate_RecalculaEstado(t *testing.T) {
	uc, _ := setupInventarioUC(t)
	resp, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-1", DistritoID: "dist-1", CantidadDisponible: 100,
	})
	require.NoError(t, err)

	cinco := 5
	updated, err := uc.Update(resp.ID, dto.UpdateInventarioRequest{CantidadDisponible: &cinco})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoRojo, updated.Estado)
}

// Precedencia del vencimiento: un update de cantidad no revive un inventario VENCIDO.
func TestInventarioUpdate_VencidoConservaVencido(t *testing.T) {
	uc, invRepo := setupInventarioUC(t)
	resp, err := uc.Create(dto.CreateInventarioRequest{
		MedicamentoID: "med-1", LoteID: "lote-1", DistritoID: "dist-1", CantidadDisponible: 5,
	})
	require.NoError(t, err)

	inv, _ := invRepo.GetByID(resp.ID)
	inv.Estado = entity.EstadoVencido
	require.NoError(t, invRepo.Update(inv))

	mil := 1000
	updated, err := uc.Update(resp.ID, dto.UpdateInventarioRequest{CantidadDisponible: &mil})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoVencido, updated.Estado)
}
