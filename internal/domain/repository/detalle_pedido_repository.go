package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// DetallePedidoRepository puerto de persistencia para líneas de detalle.
type DetallePedidoRepository interface {
	Create(d *entity.DetallePedido) error
	GetByID(id string) (*entity.DetallePedido, error)
	GetByPedidoYMedicamento(pedidoID, medicamentoID string) (*entity.DetallePedido, error)
	ListByPedido(pedidoID string) ([]*entity.DetallePedido, error)
	Update(d *entity.DetallePedido) error
	Delete(id string) error
}
