package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// DistritoUseCase CRUD plano del catálogo de distritos.
type DistritoUseCase struct {
	repo repository.DistritoRepository
}

func NewDistritoUseCase(repo repository.DistritoRepository) *DistritoUseCase {
	return &DistritoUseCase{repo: repo}
}

func (uc *DistritoUseCase) Create(in dto.CreateDistritoRequest) (*dto.DistritoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	d := &entity.Distrito{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Provincia:    in.Provincia,
		Departamento: in.Departamento,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDistritoResponse(d), nil
}

func (uc *DistritoUseCase) GetByID(id string) (*dto.DistritoResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDistritoResponse(d), nil
}

func (uc *DistritoUseCase) List(limit, offset int) ([]*dto.DistritoResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DistritoResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDistritoResponse(d))
	}
	return out, nil
}

func (uc *DistritoUseCase) Update(id string, in dto.CreateDistritoRequest) (*dto.DistritoResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != "" {
		d.Nombre = in.Nombre
	}
	if in.Provincia != "" {
		d.Provincia = in.Provincia
	}
	if in.Departamento != "" {
		d.Departamento = in.Departamento
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return toDistritoResponse(d), nil
}

func (uc *DistritoUseCase) Delete(id string) error {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toDistritoResponse(d *entity.Distrito) *dto.DistritoResponse {
	return &dto.DistritoResponse{
		ID:           d.ID,
		Nombre:       d.Nombre,
		Provincia:    d.Provincia,
		Departamento: d.Departamento,
	}
}
