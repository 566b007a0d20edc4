package repository

import "github.com/botica-dev/botica-api/internal/domain/entity"

// PersonaRepository puerto de persistencia para personas.
type PersonaRepository interface {
	Create(p *entity.Persona) error
	GetByID(id string) (*entity.Persona, error)
	GetByDNI(dni string) (*entity.Persona, error)
	List(limit, offset int) ([]*entity.Persona, error)
	Update(p *entity.Persona) error
	Delete(id string) error
}
