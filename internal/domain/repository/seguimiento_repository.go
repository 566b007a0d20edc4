package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// SeguimientoRepository puerto de persistencia para el historial de transiciones de pedidos.
type SeguimientoRepository interface {
	Create(s *entity.Seguimiento) error
	ListByPedido(pedidoID string) ([]*entity.Seguimiento, error)
}
