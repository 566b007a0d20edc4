package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// LoteUseCase alta y consulta de lotes de fabricación.
type LoteUseCase struct {
	repo            repository.LoteRepository
	medicamentoRepo repository.MedicamentoRepository
}

func NewLoteUseCase(repo repository.LoteRepository, medicamentoRepo repository.MedicamentoRepository) *LoteUseCase {
	return &LoteUseCase{repo: repo, medicamentoRepo: medicamentoRepo}
}

func (uc *LoteUseCase) Create(in dto.CreateLoteRequest) (*dto.LoteResponse, error) {
	if in.MedicamentoID == "" || in.Codigo == "" || in.FechaVencimiento.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.FechaFabricacion.IsZero() && in.FechaVencimiento.Before(in.FechaFabricacion) {
		return nil, domain.ErrInvalidInput
	}
	med, err := uc.medicamentoRepo.GetByID(in.MedicamentoID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	l := &entity.Lote{
		ID:               uuid.New().String(),
		MedicamentoID:    in.MedicamentoID,
		Codigo:           in.Codigo,
		FechaFabricacion: in.FechaFabricacion,
		FechaVencimiento: in.FechaVencimiento,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return toLoteResponse(l), nil
}

func (uc *LoteUseCase) GetByID(id string) (*dto.LoteResponse, error) {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return toLoteResponse(l), nil
}

func (uc *LoteUseCase) List(limit, offset int) ([]*dto.LoteResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LoteResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLoteResponse(l))
	}
	return out, nil
}

func (uc *LoteUseCase) ListByMedicamento(medicamentoID string, limit, offset int) ([]*dto.LoteResponse, error) {
	med, err := uc.medicamentoRepo.GetByID(medicamentoID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByMedicamento(medicamentoID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LoteResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLoteResponse(l))
	}
	return out, nil
}

func (uc *LoteUseCase) Delete(id string) error {
	l, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toLoteResponse(l *entity.Lote) *dto.LoteResponse {
	return &dto.LoteResponse{
		ID:               l.ID,
		MedicamentoID:    l.MedicamentoID,
		Codigo:           l.Codigo,
		FechaFabricacion: l.FechaFabricacion,
		FechaVencimiento: l.FechaVencimiento,
	}
}
