package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/botica-dev/botica-api/internal/application/inventario"
	"github.com/botica-dev/botica-api/internal/application/pedido"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

var _ inventario.TxRunner = (*MovimientoTxRunner)(nil)
var _ pedido.TxRunner = (*PedidoTxRunner)(nil)

// MovimientoTxRunner ejecuta los callbacks de movimientos de inventario dentro
// de una transacción PostgreSQL. El SELECT FOR UPDATE de InventarioRepo solo
// protege mientras la transacción está abierta.
type MovimientoTxRunner struct {
	pool *pgxpool.Pool
}

// NewMovimientoTxRunner construye el runner con el pool.
func NewMovimientoTxRunner(pool *pgxpool.Pool) *MovimientoTxRunner {
	return &MovimientoTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *MovimientoTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventarioRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventarioRepository(tx)
	movRepo := NewMovimientoRepository(tx)

	if err := fn(invRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PedidoTxRunner ejecuta los callbacks del ciclo de vida de pedidos (cabecera,
// detalles y seguimiento) dentro de una transacción PostgreSQL.
type PedidoTxRunner struct {
	pool *pgxpool.Pool
}

// NewPedidoTxRunner construye el runner con el pool.
func NewPedidoTxRunner(pool *pgxpool.Pool) *PedidoTxRunner {
	return &PedidoTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *PedidoTxRunner) Run(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	detalleRepo repository.DetallePedidoRepository,
	seguimientoRepo repository.SeguimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidoRepo := NewPedidoRepository(tx)
	detalleRepo := NewDetallePedidoRepository(tx)
	seguimientoRepo := NewSeguimientoRepository(tx)

	if err := fn(pedidoRepo, detalleRepo, seguimientoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
