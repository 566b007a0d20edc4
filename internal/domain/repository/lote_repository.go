package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// LoteRepository puerto de persistencia para lotes de fabricación.
type LoteRepository interface {
	Create(l *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	ListByMedicamento(medicamentoID string, limit, offset int) ([]*entity.Lote, error)
	List(limit, offset int) ([]*entity.Lote, error)
	Update(l *entity.Lote) error
	Delete(id string) error
}
