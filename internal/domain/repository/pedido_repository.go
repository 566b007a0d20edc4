package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// PedidoRepository puerto de persistencia para pedidos.
type PedidoRepository interface {
	Create(p *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	// List filtra por estado cuando estado != "".
	List(estado string, limit, offset int) ([]*entity.Pedido, error)
	Update(p *entity.Pedido) error
	Delete(id string) error
}
