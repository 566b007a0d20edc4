package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// DistritoRepository puerto de persistencia para distritos.
type DistritoRepository interface {
	Create(d *entity.Distrito) error
	GetByID(id string) (*entity.Distrito, error)
	List(limit, offset int) ([]*entity.Distrito, error)
	Update(d *entity.Distrito) error
	Delete(id string) error
}
