package inventario

import (
	"time"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

// MovimientosUseCase consulta del historial de movimientos (inmutable).
type MovimientosUseCase struct {
	movRepo repository.MovimientoRepository
	invRepo repository.InventarioRepository
}

// NewMovimientosUseCase construye el caso de uso de consulta.
func NewMovimientosUseCase(movRepo repository.MovimientoRepository, invRepo repository.InventarioRepository) *MovimientosUseCase {
	return &MovimientosUseCase{movRepo: movRepo, invRepo: invRepo}
}

// GetByID obtiene un movimiento por ID.
func (uc *MovimientosUseCase) GetByID(id string) (*dto.MovimientoResponse, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovimientoResponse(m), nil
}

// List lista movimientos con paginación, más recientes primero.
func (uc *MovimientosUseCase) List(limit, offset int) ([]*dto.MovimientoResponse, error) {
	list, err := uc.movRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovimientoResponses(list), nil
}

// ListByInventario lista los movimientos de un inventario, con rango de fechas opcional.
func (uc *MovimientosUseCase) ListByInventario(inventarioID string, from, to *time.Time, limit, offset int) ([]*dto.MovimientoResponse, error) {
	inv, err := uc.invRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByInventario(inventarioID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovimientoResponses(list), nil
}

func toMovimientoResponse(m *entity.Movimiento) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:           m.ID,
		InventarioID: m.InventarioID,
		LoteID:       m.LoteID,
		UsuarioID:    m.UsuarioID,
		Tipo:         m.Tipo,
		Cantidad:     m.Cantidad,
		Motivo:       m.Motivo,
		Fecha:        m.Fecha,
	}
}

func toMovimientoResponses(list []*entity.Movimiento) []*dto.MovimientoResponse {
	out := make([]*dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovimientoResponse(m))
	}
	return out
}
