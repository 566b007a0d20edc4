package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// MedicamentoUseCase CRUD del catálogo de medicamentos. El código es único
// y no se edita después de creado.
type MedicamentoUseCase struct {
	repo repository.MedicamentoRepository
}

func NewMedicamentoUseCase(repo repository.MedicamentoRepository) *MedicamentoUseCase {
	return &MedicamentoUseCase{repo: repo}
}

func (uc *MedicamentoUseCase) Create(in dto.CreateMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCodigo(in.Codigo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	m := &entity.Medicamento{
		ID:             uuid.New().String(),
		Codigo:         in.Codigo,
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Presentacion:   in.Presentacion,
		Concentracion:  in.Concentracion,
		Precio:         in.Precio,
		RequiereReceta: in.RequiereReceta,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMedicamentoResponse(m), nil
}

func (uc *MedicamentoUseCase) GetByID(id string) (*dto.MedicamentoResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMedicamentoResponse(m), nil
}

func (uc *MedicamentoUseCase) List(limit, offset int) ([]*dto.MedicamentoResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MedicamentoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMedicamentoResponse(m))
	}
	return out, nil
}

func (uc *MedicamentoUseCase) Update(id string, in dto.UpdateMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		m.Descripcion = *in.Descripcion
	}
	if in.Presentacion != nil {
		m.Presentacion = *in.Presentacion
	}
	if in.Concentracion != nil {
		m.Concentracion = *in.Concentracion
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.Precio = *in.Precio
	}
	if in.RequiereReceta != nil {
		m.RequiereReceta = *in.RequiereReceta
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMedicamentoResponse(m), nil
}

func (uc *MedicamentoUseCase) Delete(id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMedicamentoResponse(m *entity.Medicamento) *dto.MedicamentoResponse {
	return &dto.MedicamentoResponse{
		ID:             m.ID,
		Codigo:         m.Codigo,
		Nombre:         m.Nombre,
		Descripcion:    m.Descripcion,
		Presentacion:   m.Presentacion,
		Concentracion:  m.Concentracion,
		Precio:         m.Precio,
		RequiereReceta: m.RequiereReceta,
		CreatedAt:      m.CreatedAt,
	}
}
