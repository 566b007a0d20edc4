package repository

import (
	"time"

	"github.com/botica-dev/botica-api/internal/domain/entity"
)

// MovimientoRepository puerto de persistencia para movimientos de inventario.
// Los movimientos son inmutables: solo creación y lectura.
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	ListByInventario(inventarioID string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error)
	List(limit, offset int) ([]*entity.Movimiento, error)
}
