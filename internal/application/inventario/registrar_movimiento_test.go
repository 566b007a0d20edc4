package inventario_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botica-dev/botica-api/internal/application/dto"
	appinv "github.com/botica-dev/botica-api/internal/application/inventario"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvRepo struct {
	items         map[string]*entity.Inventario
	errGetByClave error // si no es nil, GetByClave falla con él
}

func newFakeInvRepo() *fakeInvRepo {
	return &fakeInvRepo{items: map[string]*entity.Inventario{}}
}

func (f *fakeInvRepo) Create(inv *entity.Inventario) error {
	for _, e := range f.items {
		if e.MedicamentoID == inv.MedicamentoID && e.LoteID == inv.LoteID && e.DistritoID == inv.DistritoID {
			return domain.ErrDuplicate
		}
	}
	cp := *inv
	f.items[inv.ID] = &cp
	return nil
}

func (f *fakeInvRepo) GetByID(id string) (*entity.Inventario, error) {
	inv, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvRepo) GetForUpdate(id string) (*entity.Inventario, error) {
	return f.GetByID(id)
}

func (f *fakeInvRepo) GetByClave(medicamentoID, loteID, distritoID string) (*entity.Inventario, error) {
	if f.errGetByClave != nil {
		return nil, f.errGetByClave
	}
	for _, e := range f.items {
		if e.MedicamentoID == medicamentoID && e.LoteID == loteID && e.DistritoID == distritoID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInvRepo) List(limit, offset int) ([]*entity.Inventario, error) { return nil, nil }
func (f *fakeInvRepo) ListByDistrito(distritoID string, limit, offset int) ([]*entity.Inventario, error) {
	return nil, nil
}

func (f *fakeInvRepo) Update(inv *entity.Inventario) error {
	if _, ok := f.items[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	f.items[inv.ID] = &cp
	return nil
}

func (f *fakeInvRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeInvRepo) MarcarVencidos(hoy time.Time) (int64, error)                 { return 0, nil }
func (f *fakeInvRepo) MarcarPorVencer(hoy time.Time, horizonte int) (int64, error) { return 0, nil }

type fakeMovRepo struct {
	creados []*entity.Movimiento
}

func (f *fakeMovRepo) Create(m *entity.Movimiento) error {
	cp := *m
	f.creados = append(f.creados, &cp)
	return nil
}

func (f *fakeMovRepo) GetByID(id string) (*entity.Movimiento, error) { return nil, nil }
func (f *fakeMovRepo) ListByInventario(string, *time.Time, *time.Time, int, int) ([]*entity.Movimiento, error) {
	return nil, nil
}
func (f *fakeMovRepo) List(limit, offset int) ([]*entity.Movimiento, error) { return nil, nil }

// fakeTxRunner ejecuta el callback directo sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	invRepo *fakeInvRepo
	movRepo *fakeMovRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventarioRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	return fn(f.invRepo, f.movRepo)
}

func setupMovimiento(t *testing.T, cantidad, reorden int) (*appinv.RegistrarMovimientoUseCase, *fakeInvRepo, *fakeMovRepo, string) {
	t.Helper()
	invRepo := newFakeInvRepo()
	movRepo := &fakeMovRepo{}
	inv := &entity.Inventario{
		ID:                 "inv-1",
		MedicamentoID:      "med-1",
		LoteID:             "lote-1",
		DistritoID:         "dist-1",
		CantidadDisponible: cantidad,
		PuntoReorden:       reorden,
		Estado:             entity.EstadoDisponible,
	}
	require.NoError(t, invRepo.Create(inv))
	uc := appinv.NewRegistrarMovimientoUseCase(&fakeTxRunner{invRepo: invRepo, movRepo: movRepo}, invRepo)
	return uc, invRepo, movRepo, inv.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaSumaStock(t *testing.T) {
	uc, invRepo, movRepo, invID := setupMovimiento(t, 100, 10)

	resp, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimientoRequest{
		InventarioID: invID, Tipo: entity.MovimientoEntrada, Cantidad: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovimientoEntrada, resp.Tipo)

	inv, _ := invRepo.GetByID(invID)
	assert.Equal(t, 150, inv.CantidadDisponible, "available_after == available_before + quantity")
	assert.Len(t, movRepo.creados, 1)
}

func TestRegistrar_SalidaConStockSuficiente(t *testing.T) {
	uc, invRepo, _, invID := setupMovimiento(t, 100, 10)

	_, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimientoRequest{
		InventarioID: invID, Tipo: entity.MovimientoSalida, Cantidad: 30,
	})
	require.NoError(t, err)

	inv, _ := invRepo.GetByID(invID)
	assert.Equal(t, 70, inv.CantidadDisponible)
}

func TestRegistrar_SalidaExcesivaFallaYNoMuta(t *testing.T) {
	uc, invRepo, movRepo, invID := setupMovimiento(t, 20, 10)

	_, err := uc.Registrar(context.Background(), "user-1", dto.RegistrarMovimientoRequest{
		InventarioID: invID, Tipo: entity.MovimientoSalida, Cantidad: 21,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	inv, _ := invRepo.GetByID(invID)
	assert.Equal(t, 20, inv.CantidadDisponible, "la cantidad debe quedar intacta")
	assert.Empty(t, movRepo.creados, "no debe persistirse el movimiento rechazado")
}

// Round-trip básico: crear → ENTRADA(50) → SALIDA(30) → disponible == 20.
func TestRegistrar_RoundTripEntradaSalida(t *testing.T) {
	uc, invRepo, _, invID := setupMovimiento(t, 0, 10)
	ctx := context.Background()

	_, err := uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: invID, Tipo: entity.MovimientoEntrada, Cantidad: 50})
	require.NoError(t, err)
	_, err = uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: invID, Tipo: entity.MovimientoSalida, Cantidad: 30})
	require.NoError(t, err)

	inv, _ := invRepo.GetByID(invID)
	assert.Equal(t, 20, inv.CantidadDisponible)
}

// Escenario de umbrales: 100 → SALIDA(85) → AMARILLO (15 <= 20); SALIDA(10) → ROJO (5 <= 10).
func TestRegistrar_RecalculaEstadoTrasCadaMovimiento(t *testing.T) {
	uc, invRepo, _, invID := setupMovimiento(t, 100, 10)
	ctx := context.Background()

	_, err := uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: invID, Tipo: entity.MovimientoSalida, Cantidad: 85})
	require.NoError(t, err)
	inv, _ := invRepo.GetByID(invID)
	assert.Equal(t, 15, inv.CantidadDisponible)
	assert.Equal(t, entity.EstadoAmarillo, inv.Estado)

	_, err = uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: invID, Tipo: entity.MovimientoSalida, Cantidad: 10})
	require.NoError(t, err)
	inv, _ = invRepo.GetByID(invID)
	assert.Equal(t, 5, inv.CantidadDisponible)
	assert.Equal(t, entity.EstadoRojo, inv.Estado)
}

// AJUSTE/TRANSFERENCIA/DEVOLUCION se registran pero no tocan la cantidad.
func TestRegistrar_TiposNeutralesNoMutanCantidad(t *testing.T) {
	for _, tipo := range []string{entity.MovimientoTransferencia, entity.MovimientoAjuste, entity.MovimientoDevolucion} {
		t.Run(tipo, func(t *testing.T) {
			uc, invRepo, movRepo, invID := setupMovimiento(t, 40, 10)

			_, err := uc.Registrar(context.Background(), "u", dto.RegistrarMovimientoRequest{
				InventarioID: invID, Tipo: tipo, Cantidad: 7,
			})
			require.NoError(t, err)

			inv, _ := invRepo.GetByID(invID)
			assert.Equal(t, 40, inv.CantidadDisponible)
			assert.Len(t, movRepo.creados, 1, "el movimiento sí debe persistirse")
		})
	}
}

func TestRegistrar_Validaciones(t *testing.T) {
	uc, _, _, invID := setupMovimiento(t, 10, 5)
	ctx := context.Background()

	_, err := uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: invID, Tipo: "REGALO", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	_, err = uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: invID, Tipo: entity.MovimientoEntrada, Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: invID, Tipo: entity.MovimientoEntrada, Cantidad: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = uc.Registrar(ctx, "u", dto.RegistrarMovimientoRequest{InventarioID: "no-existe", Tipo: entity.MovimientoEntrada, Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
