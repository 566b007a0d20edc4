package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// PersonaUseCase CRUD de personas. El DNI es único y no se edita.
type PersonaUseCase struct {
	repo         repository.PersonaRepository
	distritoRepo repository.DistritoRepository
}

func NewPersonaUseCase(repo repository.PersonaRepository, distritoRepo repository.DistritoRepository) *PersonaUseCase {
	return &PersonaUseCase{repo: repo, distritoRepo: distritoRepo}
}

func (uc *PersonaUseCase) Create(in dto.CreatePersonaRequest) (*dto.PersonaResponse, error) {
	if in.DNI == "" || in.Nombres == "" || in.Apellidos == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByDNI(in.DNI)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.DistritoID != "" {
		d, err := uc.distritoRepo.GetByID(in.DistritoID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	p := &entity.Persona{
		ID:         uuid.New().String(),
		DNI:        in.DNI,
		Nombres:    in.Nombres,
		Apellidos:  in.Apellidos,
		Telefono:   in.Telefono,
		Direccion:  in.Direccion,
		DistritoID: in.DistritoID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPersonaResponse(p), nil
}

func (uc *PersonaUseCase) GetByID(id string) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPersonaResponse(p), nil
}

func (uc *PersonaUseCase) GetByDNI(dni string) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByDNI(dni)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPersonaResponse(p), nil
}

func (uc *PersonaUseCase) List(limit, offset int) ([]*dto.PersonaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PersonaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPersonaResponse(p))
	}
	return out, nil
}

func (uc *PersonaUseCase) Update(id string, in dto.UpdatePersonaRequest) (*dto.PersonaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombres != nil {
		p.Nombres = *in.Nombres
	}
	if in.Apellidos != nil {
		p.Apellidos = *in.Apellidos
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		p.Direccion = *in.Direccion
	}
	if in.DistritoID != nil {
		if *in.DistritoID != "" {
			d, err := uc.distritoRepo.GetByID(*in.DistritoID)
			if err != nil {
				return nil, err
			}
			if d == nil {
				return nil, domain.ErrNotFound
			}
		}
		p.DistritoID = *in.DistritoID
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPersonaResponse(p), nil
}

func (uc *PersonaUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPersonaResponse(p *entity.Persona) *dto.PersonaResponse {
	return &dto.PersonaResponse{
		ID:         p.ID,
		DNI:        p.DNI,
		Nombres:    p.Nombres,
		Apellidos:  p.Apellidos,
		Telefono:   p.Telefono,
		Direccion:  p.Direccion,
		DistritoID: p.DistritoID,
		CreatedAt:  p.CreatedAt,
	}
}
