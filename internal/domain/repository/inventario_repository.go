package repository

import (
	"time"

	"github.com/botica-dev/botica-api/internal/domain/entity"
)

// InventarioRepository puerto de persistencia para inventarios.
// Usado dentro de transacciones para garantizar consistencia de stock.
type InventarioRepository interface {
	Create(inv *entity.Inventario) error
	GetByID(id string) (*entity.Inventario, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Inventario, error)
	GetByClave(medicamentoID, loteID, distritoID string) (*entity.Inventario, error)
	List(limit, offset int) ([]*entity.Inventario, error)
	ListByDistrito(distritoID string, limit, offset int) ([]*entity.Inventario, error)
	Update(inv *entity.Inventario) error
	Delete(id string) error

	// MarcarVencidos pone VENCIDO todo inventario cuyo lote venció en o antes de hoy.
	// Devuelve la cantidad de filas afectadas.
	MarcarVencidos(hoy time.Time) (int64, error)
	// MarcarPorVencer pone AMARILLO los inventarios DISPONIBLE cuyo lote vence
	// dentro del horizonte. No toca filas VENCIDO ni ROJO.
	MarcarPorVencer(hoy time.Time, horizonteDias int) (int64, error)
}
