package pedido

import (
	"context"

	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los repositorios
// del agregado pedido atados a esa tx. Si falla la inserción de una línea de detalle,
// la cabecera se revierte con el Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		detalleRepo repository.DetallePedidoRepository,
		seguimientoRepo repository.SeguimientoRepository,
	) error) error
}
