package inventario

import (
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	dominv "github.com/botica-dev/botica-api/internal/domain/inventario"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// InventarioUseCase CRUD de inventarios. La cantidad se modifica normalmente vía
// movimientos; el update directo existe para correcciones y recalcula el estado.
type InventarioUseCase struct {
	invRepo         repository.InventarioRepository
	medicamentoRepo repository.MedicamentoRepository
	loteRepo        repository.LoteRepository
	distritoRepo    repository.DistritoRepository
	horizonteDias   int
}

// NewInventarioUseCase construye el caso de uso. horizonteDias es la ventana de
// "por vencer" usada para el estado inicial al crear.
func NewInventarioUseCase(
	invRepo repository.InventarioRepository,
	medicamentoRepo repository.MedicamentoRepository,
	loteRepo repository.LoteRepository,
	distritoRepo repository.DistritoRepository,
	horizonteDias int,
) *InventarioUseCase {
	return &InventarioUseCase{
		invRepo:         invRepo,
		medicamentoRepo: medicamentoRepo,
		loteRepo:        loteRepo,
		distritoRepo:    distritoRepo,
		horizonteDias:   horizonteDias,
	}
}

// Create crea un inventario para una tripleta (medicamento, lote, distrito).
// Falla con ErrDuplicate si la tripleta ya existe y con ErrNotFound si alguna referencia no existe.
func (uc *InventarioUseCase) Create(in dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	if in.MedicamentoID == "" || in.LoteID == "" || in.DistritoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CantidadDisponible < 0 {
		return nil, domain.ErrInvalidInput
	}
	puntoReorden := entity.PuntoReordenDefault
	if in.PuntoReorden != nil {
		if *in.PuntoReorden < 0 {
			return nil, domain.ErrInvalidInput
		}
		puntoReorden = *in.PuntoReorden
	}

	med, err := uc.medicamentoRepo.GetByID(in.MedicamentoID)
	if err != nil {
		return nil, err
	}
	lote, err := uc.loteRepo.GetByID(in.LoteID)
	if err != nil {
		return nil, err
	}
	distrito, err := uc.distritoRepo.GetByID(in.DistritoID)
	if err != nil {
		return nil, err
	}
	if med == nil || lote == nil || distrito == nil {
		return nil, domain.ErrNotFound
	}
	if lote.MedicamentoID != in.MedicamentoID {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.invRepo.GetByClave(in.MedicamentoID, in.LoteID, in.DistritoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	// Estado inicial: umbrales de cantidad primero, luego el vencimiento del lote
	// (un lote ya vencido nace VENCIDO; por vencer dentro del horizonte, AMARILLO).
	estado := dominv.DerivarEstado(in.CantidadDisponible, puntoReorden, entity.EstadoDisponible)
	estado = dominv.EstadoPorVencimiento(estado, lote.FechaVencimiento, now, uc.horizonteDias)
	inv := &entity.Inventario{
		ID:                 uuid.New().String(),
		MedicamentoID:      in.MedicamentoID,
		LoteID:             in.LoteID,
		DistritoID:         in.DistritoID,
		CantidadDisponible: in.CantidadDisponible,
		PuntoReorden:       puntoReorden,
		Estado:             estado,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return ToInventarioResponse(inv), nil
}

// GetByID obtiene un inventario por ID.
func (uc *InventarioUseCase) GetByID(id string) (*dto.InventarioResponse, error) {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return ToInventarioResponse(inv), nil
}

// List lista inventarios, opcionalmente por distrito.
func (uc *InventarioUseCase) List(distritoID string, limit, offset int) ([]*dto.InventarioResponse, error) {
	var (
		list []*entity.Inventario
		err  error
	)
	if distritoID != "" {
		list, err = uc.invRepo.ListByDistrito(distritoID, limit, offset)
	} else {
		list, err = uc.invRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventarioResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, ToInventarioResponse(inv))
	}
	return out, nil
}

// Update edición directa de cantidad o punto de reorden. El estado se recalcula;
// un inventario VENCIDO conserva VENCIDO (precedencia del vencimiento).
func (uc *InventarioUseCase) Update(id string, in dto.UpdateInventarioRequest) (*dto.InventarioResponse, error) {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if in.CantidadDisponible != nil {
		if *in.CantidadDisponible < 0 {
			return nil, domain.ErrInvalidInput
		}
		inv.CantidadDisponible = *in.CantidadDisponible
	}
	if in.PuntoReorden != nil {
		if *in.PuntoReorden < 0 {
			return nil, domain.ErrInvalidInput
		}
		inv.PuntoReorden = *in.PuntoReorden
	}
	inv.Estado = dominv.DerivarEstado(inv.CantidadDisponible, inv.PuntoReorden, inv.Estado)
	inv.UpdatedAt = time.Now()
	if err := uc.invRepo.Update(inv); err != nil {
		return nil, err
	}
	return ToInventarioResponse(inv), nil
}

// Delete elimina un inventario.
func (uc *InventarioUseCase) Delete(id string) error {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invRepo.Delete(id)
}

// ToInventarioResponse mapea la entidad al DTO.
func ToInventarioResponse(inv *entity.Inventario) *dto.InventarioResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventarioResponse{
		ID:                 inv.ID,
		MedicamentoID:      inv.MedicamentoID,
		LoteID:             inv.LoteID,
		DistritoID:         inv.DistritoID,
		CantidadDisponible: inv.CantidadDisponible,
		PuntoReorden:       inv.PuntoReorden,
		Estado:             inv.Estado,
		UpdatedAt:          inv.UpdatedAt,
	}
}
