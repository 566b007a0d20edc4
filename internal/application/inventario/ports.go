package inventario

import (
	"context"

	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad entre la validación de stock, la escritura
// del movimiento y la actualización del inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventarioRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
