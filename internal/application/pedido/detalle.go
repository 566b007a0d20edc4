package pedido

import (
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
)

// Sub-ciclo de las líneas de detalle: alta tardía, aprobación y entrega acumulada.

// AgregarDetalle añade una línea a un pedido existente. Falla con ErrDuplicate si
// ya hay una línea para ese medicamento en el pedido.
func (uc *PedidoUseCase) AgregarDetalle(pedidoID string, in dto.CreateDetalleRequest) (*dto.DetalleResponse, error) {
	if in.MedicamentoID == "" || in.CantidadSolicitada <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	med, err := uc.medicamentoRepo.GetByID(in.MedicamentoID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.detalleRepo.GetByPedidoYMedicamento(pedidoID, in.MedicamentoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	det := &entity.DetallePedido{
		ID:                 uuid.New().String(),
		PedidoID:           pedidoID,
		MedicamentoID:      in.MedicamentoID,
		CantidadSolicitada: in.CantidadSolicitada,
		Estado:             entity.DetallePendiente,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.detalleRepo.Create(det); err != nil {
		return nil, err
	}
	return toDetalleResponse(det), nil
}

// detalleDelPedido obtiene una línea verificando que pertenezca al pedido de la
// ruta; una línea de otro pedido se reporta como inexistente.
func (uc *PedidoUseCase) detalleDelPedido(pedidoID, detalleID string) (*entity.DetallePedido, error) {
	det, err := uc.detalleRepo.GetByID(detalleID)
	if err != nil {
		return nil, err
	}
	if det == nil || det.PedidoID != pedidoID {
		return nil, domain.ErrNotFound
	}
	return det, nil
}

// AprobarDetalle fija la cantidad aprobada de una línea, una sola vez. Falla con
// ErrInvalidInput cuando la cantidad aprobada supera la solicitada y con
// ErrInvalidState si la línea ya fue aprobada: reaprobar podría dejar la cantidad
// aprobada por debajo de lo ya entregado.
func (uc *PedidoUseCase) AprobarDetalle(pedidoID, detalleID string, in dto.AprobarDetalleRequest) (*dto.DetalleResponse, error) {
	if in.CantidadAprobada < 0 {
		return nil, domain.ErrInvalidInput
	}
	det, err := uc.detalleDelPedido(pedidoID, detalleID)
	if err != nil {
		return nil, err
	}
	if det.CantidadAprobada != nil {
		return nil, domain.ErrInvalidState
	}
	if in.CantidadAprobada > det.CantidadSolicitada {
		return nil, domain.ErrInvalidInput
	}
	aprobada := in.CantidadAprobada
	det.CantidadAprobada = &aprobada
	det.Estado = entity.DetalleAprobado
	det.UpdatedAt = time.Now()
	if err := uc.detalleRepo.Update(det); err != nil {
		return nil, err
	}
	return toDetalleResponse(det), nil
}

// EntregarDetalle acumula una entrega parcial. Falla con ErrInvalidState si la
// línea no fue aprobada y con ErrInvalidInput si el acumulado superaría lo
// aprobado. PARCIAL mientras 0 < entregada < aprobada; COMPLETADO en la igualdad.
func (uc *PedidoUseCase) EntregarDetalle(pedidoID, detalleID string, in dto.EntregarDetalleRequest) (*dto.DetalleResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	det, err := uc.detalleDelPedido(pedidoID, detalleID)
	if err != nil {
		return nil, err
	}
	if det.CantidadAprobada == nil {
		return nil, domain.ErrInvalidState
	}
	aprobada := *det.CantidadAprobada
	if det.CantidadEntregada+in.Cantidad > aprobada {
		return nil, domain.ErrInvalidInput
	}
	det.CantidadEntregada += in.Cantidad
	if det.CantidadEntregada == aprobada {
		det.Estado = entity.DetalleCompletado
	} else {
		det.Estado = entity.DetalleParcial
	}
	det.UpdatedAt = time.Now()
	if err := uc.detalleRepo.Update(det); err != nil {
		return nil, err
	}
	return toDetalleResponse(det), nil
}

// ListDetalles lista las líneas de un pedido.
func (uc *PedidoUseCase) ListDetalles(pedidoID string) ([]*dto.DetalleResponse, error) {
	p, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.detalleRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DetalleResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDetalleResponse(d))
	}
	return out, nil
}

// EliminarDetalle borra una línea; independiente del borrado del pedido.
func (uc *PedidoUseCase) EliminarDetalle(pedidoID, detalleID string) error {
	if _, err := uc.detalleDelPedido(pedidoID, detalleID); err != nil {
		return err
	}
	return uc.detalleRepo.Delete(detalleID)
}
