package pedido_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botica-dev/botica-api/internal/application/dto"
	apppedido "github.com/botica-dev/botica-api/internal/application/pedido"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePedidoRepo struct {
	items map[string]*entity.Pedido
}

func (f *fakePedidoRepo) Create(p *entity.Pedido) error {
	cp := *p
	f.items[p.ID] = &cp
	return nil
}
func (f *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakePedidoRepo) List(estado string, limit, offset int) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.items {
		if estado == "" || p.Estado == estado {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (f *fakePedidoRepo) Update(p *entity.Pedido) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.items[p.ID] = &cp
	return nil
}
func (f *fakePedidoRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

type fakeDetalleRepo struct {
	items                map[string]*entity.DetallePedido
	failOnCount          int   // si > 0, Create falla cuando ya hay esa cantidad de filas
	errGetPorMedicamento error // si no es nil, GetByPedidoYMedicamento falla con él
}

func (f *fakeDetalleRepo) Create(d *entity.DetallePedido) error {
	if f.failOnCount > 0 && len(f.items) >= f.failOnCount {
		return errForzado
	}
	for _, e := range f.items {
		if e.PedidoID == d.PedidoID && e.MedicamentoID == d.MedicamentoID {
			return domain.ErrDuplicate
		}
	}
	cp := *d
	f.items[d.ID] = &cp
	return nil
}
func (f *fakeDetalleRepo) GetByID(id string) (*entity.DetallePedido, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}
func (f *fakeDetalleRepo) GetByPedidoYMedicamento(pedidoID, medicamentoID string) (*entity.DetallePedido, error) {
	if f.errGetPorMedicamento != nil {
		return nil, f.errGetPorMedicamento
	}
	for _, e := range f.items {
		if e.PedidoID == pedidoID && e.MedicamentoID == medicamentoID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeDetalleRepo) ListByPedido(pedidoID string) ([]*entity.DetallePedido, error) {
	var out []*entity.DetallePedido
	for _, e := range f.items {
		if e.PedidoID == pedidoID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (f *fakeDetalleRepo) Update(d *entity.DetallePedido) error {
	if _, ok := f.items[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *d
	f.items[d.ID] = &cp
	return nil
}
func (f *fakeDetalleRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

type fakeSeguimientoRepo struct {
	items []*entity.Seguimiento
}

func (f *fakeSeguimientoRepo) Create(s *entity.Seguimiento) error {
	cp := *s
	f.items = append(f.items, &cp)
	return nil
}
func (f *fakeSeguimientoRepo) ListByPedido(pedidoID string) ([]*entity.Seguimiento, error) {
	var out []*entity.Seguimiento
	for _, s := range f.items {
		if s.PedidoID == pedidoID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeUsuarioRepo struct{}

func (f *fakeUsuarioRepo) Create(*entity.Usuario) error                  { return nil }
func (f *fakeUsuarioRepo) GetByID(string) (*entity.Usuario, error)       { return nil, nil }
func (f *fakeUsuarioRepo) GetByUsername(string) (*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarioRepo) List(int, int) ([]*entity.Usuario, error)      { return nil, nil }
func (f *fakeUsuarioRepo) Update(*entity.Usuario) error                  { return nil }
func (f *fakeUsuarioRepo) Delete(string) error                           { return nil }

type fakeMedRepo struct{ items map[string]*entity.Medicamento }

func (f *fakeMedRepo) Create(m *entity.Medicamento) error             { f.items[m.ID] = m; return nil }
func (f *fakeMedRepo) GetByID(id string) (*entity.Medicamento, error) { return f.items[id], nil }
func (f *fakeMedRepo) GetByCodigo(string) (*entity.Medicamento, error) {
	return nil, nil
}
func (f *fakeMedRepo) List(int, int) ([]*entity.Medicamento, error) { return nil, nil }
func (f *fakeMedRepo) Update(*entity.Medicamento) error             { return nil }
func (f *fakeMedRepo) Delete(string) error                          { return nil }

// fakeTx simula la transacción: ante error, revierte los mapas a una copia previa.
type fakeTx struct {
	pedidoRepo      *fakePedidoRepo
	detalleRepo     *fakeDetalleRepo
	seguimientoRepo *fakeSeguimientoRepo
}

func (f *fakeTx) Run(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	detalleRepo repository.DetallePedidoRepository,
	seguimientoRepo repository.SeguimientoRepository,
) error) error {
	pedidosAntes := make(map[string]*entity.Pedido, len(f.pedidoRepo.items))
	for k, v := range f.pedidoRepo.items {
		cp := *v
		pedidosAntes[k] = &cp
	}
	detallesAntes := make(map[string]*entity.DetallePedido, len(f.detalleRepo.items))
	for k, v := range f.detalleRepo.items {
		cp := *v
		detallesAntes[k] = &cp
	}
	if err := fn(f.pedidoRepo, f.detalleRepo, f.seguimientoRepo); err != nil {
		f.pedidoRepo.items = pedidosAntes
		f.detalleRepo.items = detallesAntes
		return err
	}
	return nil
}

var errForzado = errors.New("fallo forzado")

func setupPedidoUC(t *testing.T) (*apppedido.PedidoUseCase, *fakePedidoRepo, *fakeDetalleRepo, *fakeSeguimientoRepo) {
	t.Helper()
	pedidoRepo := &fakePedidoRepo{items: map[string]*entity.Pedido{}}
	detalleRepo := &fakeDetalleRepo{items: map[string]*entity.DetallePedido{}}
	seguimientoRepo := &fakeSeguimientoRepo{}
	medRepo := &fakeMedRepo{items: map[string]*entity.Medicamento{
		"med-1": {ID: "med-1", Nombre: "Amoxicilina 500mg"},
		"med-5": {ID: "med-5", Nombre: "Ibuprofeno 400mg"},
	}}
	tx := &fakeTx{pedidoRepo: pedidoRepo, detalleRepo: detalleRepo, seguimientoRepo: seguimientoRepo}
	uc := apppedido.NewPedidoUseCase(tx, pedidoRepo, detalleRepo, seguimientoRepo, medRepo, &fakeUsuarioRepo{})
	return uc, pedidoRepo, detalleRepo, seguimientoRepo
}

func crearPedido(t *testing.T, uc *apppedido.PedidoUseCase) *dto.PedidoResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), "solicitante-1", dto.CreatePedidoRequest{
		Prioridad: entity.PrioridadAlta,
		Detalles: []dto.CreateDetalleRequest{
			{MedicamentoID: "med-1", CantidadSolicitada: 10},
		},
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoCreate_NacePendienteConDetalles(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	resp := crearPedido(t, uc)

	assert.Equal(t, entity.PedidoPendiente, resp.Estado)
	assert.Len(t, resp.Detalles, 1)
	assert.Equal(t, entity.DetallePendiente, resp.Detalles[0].Estado)
}

func TestPedidoCreate_SinDetallesFalla(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	_, err := uc.Create(context.Background(), "s-1", dto.CreatePedidoRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Dos líneas con el mismo medicamento en el payload → Conflict.
func TestPedidoCreate_MedicamentoRepetidoFalla(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	_, err := uc.Create(context.Background(), "s-1", dto.CreatePedidoRequest{
		Detalles: []dto.CreateDetalleRequest{
			{MedicamentoID: "med-5", CantidadSolicitada: 3},
			{MedicamentoID: "med-5", CantidadSolicitada: 4},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Si un detalle falla a mitad de la creación, la cabecera se revierte con la tx.
func TestPedidoCreate_DetalleFallidoRevierteCabecera(t *testing.T) {
	uc, pedidoRepo, detalleRepo, _ := setupPedidoUC(t)
	detalleRepo.failOnCount = 1 // la segunda línea falla

	_, err := uc.Create(context.Background(), "s-1", dto.CreatePedidoRequest{
		Detalles: []dto.CreateDetalleRequest{
			{MedicamentoID: "med-1", CantidadSolicitada: 1},
			{MedicamentoID: "med-5", CantidadSolicitada: 2},
		},
	})
	require.Error(t, err)
	assert.Empty(t, pedidoRepo.items, "la cabecera no debe quedar persistida")
	assert.Empty(t, detalleRepo.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarEstado_AprobadoFijaFechaYAutorizador(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	p := crearPedido(t, uc)

	resp, err := uc.CambiarEstado(context.Background(), p.ID, "autorizador-1", dto.CambiarEstadoRequest{
		Estado: entity.PedidoAprobado,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PedidoAprobado, resp.Estado)
	require.NotNil(t, resp.FechaAutorizacion)
	assert.WithinDuration(t, time.Now(), *resp.FechaAutorizacion, time.Minute)
	require.NotNil(t, resp.AutorizadorID)
	assert.Equal(t, "autorizador-1", *resp.AutorizadorID)
}

// APROBADO no tiene destino PENDIENTE.
func TestCambiarEstado_AprobadoAPendienteFalla(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	p := crearPedido(t, uc)
	ctx := context.Background()

	_, err := uc.CambiarEstado(ctx, p.ID, "u", dto.CambiarEstadoRequest{Estado: entity.PedidoAprobado})
	require.NoError(t, err)

	_, err = uc.CambiarEstado(ctx, p.ID, "u", dto.CambiarEstadoRequest{Estado: entity.PedidoPendiente})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), entity.PedidoEnProceso, "el error enumera los destinos permitidos")
}

func TestCambiarEstado_FlujoCompletoHastaTerminal(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	p := crearPedido(t, uc)
	ctx := context.Background()

	for _, estado := range []string{entity.PedidoAprobado, entity.PedidoEnProceso, entity.PedidoCompletado} {
		_, err := uc.CambiarEstado(ctx, p.ID, "u", dto.CambiarEstadoRequest{Estado: estado})
		require.NoError(t, err, "transición a %s", estado)
	}

	resp, err := uc.GetByID(p.ID)
	require.NoError(t, err)
	assert.NotNil(t, resp.FechaCompletado)

	// COMPLETADO es terminal: cualquier salida falla.
	for _, estado := range []string{entity.PedidoPendiente, entity.PedidoCancelado, entity.PedidoAprobado} {
		_, err := uc.CambiarEstado(ctx, p.ID, "u", dto.CambiarEstadoRequest{Estado: estado})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "COMPLETADO -> %s", estado)
	}
}

func TestCambiarEstado_RechazoGuardaMotivo(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	p := crearPedido(t, uc)

	resp, err := uc.CambiarEstado(context.Background(), p.ID, "u", dto.CambiarEstadoRequest{
		Estado:        entity.PedidoRechazado,
		MotivoRechazo: "sin presupuesto",
	})
	require.NoError(t, err)
	assert.Equal(t, "sin presupuesto", resp.MotivoRechazo)
}

func TestCambiarEstado_RegistraSeguimiento(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	p := crearPedido(t, uc)
	ctx := context.Background()

	_, err := uc.CambiarEstado(ctx, p.ID, "u-1", dto.CambiarEstadoRequest{Estado: entity.PedidoAprobado})
	require.NoError(t, err)
	_, err = uc.CambiarEstado(ctx, p.ID, "u-2", dto.CambiarEstadoRequest{Estado: entity.PedidoEnProceso})
	require.NoError(t, err)

	segs, err := uc.ListSeguimientos(p.ID)
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, entity.PedidoPendiente, segs[0].EstadoAnterior)
	assert.Equal(t, entity.PedidoAprobado, segs[0].EstadoNuevo)
	assert.Equal(t, entity.PedidoAprobado, segs[1].EstadoAnterior)
	assert.Equal(t, entity.PedidoEnProceso, segs[1].EstadoNuevo)
}

func TestCambiarEstado_EstadoDesconocidoFalla(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	p := crearPedido(t, uc)

	_, err := uc.CambiarEstado(context.Background(), p.ID, "u", dto.CambiarEstadoRequest{Estado: "ENVIADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y eliminación restringidas por estado
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoUpdate_SoloEnPendiente(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	p := crearPedido(t, uc)
	ctx := context.Background()

	baja := entity.PrioridadBaja
	_, err := uc.Update(p.ID, dto.UpdatePedidoRequest{Prioridad: &baja})
	require.NoError(t, err, "editable en PENDIENTE")

	_, err = uc.CambiarEstado(ctx, p.ID, "u", dto.CambiarEstadoRequest{Estado: entity.PedidoAprobado})
	require.NoError(t, err)

	_, err = uc.Update(p.ID, dto.UpdatePedidoRequest{Prioridad: &baja})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestPedidoDelete_RestringidoPorEstado(t *testing.T) {
	uc, _, _, _ := setupPedidoUC(t)
	ctx := context.Background()

	t.Run("PENDIENTE se elimina", func(t *testing.T) {
		p := crearPedido(t, uc)
		assert.NoError(t, uc.Delete(p.ID))
	})

	t.Run("APROBADO no se elimina", func(t *testing.T) {
		p := crearPedido(t, uc)
		_, err := uc.CambiarEstado(ctx, p.ID, "u", dto.CambiarEstadoRequest{Estado: entity.PedidoAprobado})
		require.NoError(t, err)
		assert.ErrorIs(t, uc.Delete(p.ID), domain.ErrInvalidState)
	})

	t.Run("CANCELADO se elimina", func(t *testing.T) {
		p := crearPedido(t, uc)
		_, err := uc.CambiarEstado(ctx, p.ID, "u", dto.CambiarEstadoRequest{Estado: entity.PedidoCancelado})
		require.NoError(t, err)
		assert.NoError(t, uc.Delete(p.ID))
	})
}
