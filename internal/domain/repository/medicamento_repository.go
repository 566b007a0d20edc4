package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// MedicamentoRepository puerto de persistencia para el catálogo de medicamentos.
type MedicamentoRepository interface {
	Create(m *entity.Medicamento) error
	GetByID(id string) (*entity.Medicamento, error)
	GetByCodigo(codigo string) (*entity.Medicamento, error)
	List(limit, offset int) ([]*entity.Medicamento, error)
	Update(m *entity.Medicamento) error
	Delete(id string) error
}
