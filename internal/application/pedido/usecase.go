package pedido

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	dompedido "github.com/botica-dev/botica-api/internal/domain/pedido"
	"github.com/botica-dev/botica-api/internal/domain/repository"
	"github.com/botica-dev/botica-api/pkg/metrics"
)

// PedidoUseCase ciclo de vida del pedido: creación con detalles, transiciones de
// estado con registro de seguimiento, edición solo en PENDIENTE y eliminación
// restringida por estado.
type PedidoUseCase struct {
	txRunner        TxRunner
	pedidoRepo      repository.PedidoRepository
	detalleRepo     repository.DetallePedidoRepository
	seguimientoRepo repository.SeguimientoRepository
	medicamentoRepo repository.MedicamentoRepository
	usuarioRepo     repository.UsuarioRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	detalleRepo repository.DetallePedidoRepository,
	seguimientoRepo repository.SeguimientoRepository,
	medicamentoRepo repository.MedicamentoRepository,
	usuarioRepo repository.UsuarioRepository,
) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:        txRunner,
		pedidoRepo:      pedidoRepo,
		detalleRepo:     detalleRepo,
		seguimientoRepo: seguimientoRepo,
		medicamentoRepo: medicamentoRepo,
		usuarioRepo:     usuarioRepo,
	}
}

// Create crea un pedido PENDIENTE con al menos una línea de detalle, todo dentro
// de una transacción. Falla con ErrInvalidInput si no hay detalles o la prioridad
// es desconocida, ErrDuplicate si el payload repite medicamento y ErrNotFound si
// algún medicamento no existe.
func (uc *PedidoUseCase) Create(ctx context.Context, solicitanteID string, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if solicitanteID == "" || len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	prioridad := in.Prioridad
	if prioridad == "" {
		prioridad = entity.PrioridadMedia
	}
	switch prioridad {
	case entity.PrioridadAlta, entity.PrioridadMedia, entity.PrioridadBaja:
	default:
		return nil, domain.ErrInvalidInput
	}

	vistos := make(map[string]bool, len(in.Detalles))
	for _, d := range in.Detalles {
		if d.MedicamentoID == "" || d.CantidadSolicitada <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if vistos[d.MedicamentoID] {
			return nil, domain.ErrDuplicate
		}
		vistos[d.MedicamentoID] = true
		med, err := uc.medicamentoRepo.GetByID(d.MedicamentoID)
		if err != nil {
			return nil, err
		}
		if med == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	p := &entity.Pedido{
		ID:             uuid.New().String(),
		SolicitanteID:  solicitanteID,
		Estado:         entity.PedidoPendiente,
		Prioridad:      prioridad,
		FechaRequerida: in.FechaRequerida,
		Observaciones:  in.Observaciones,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	detalles := make([]*entity.DetallePedido, 0, len(in.Detalles))
	for _, d := range in.Detalles {
		detalles = append(detalles, &entity.DetallePedido{
			ID:                 uuid.New().String(),
			PedidoID:           p.ID,
			MedicamentoID:      d.MedicamentoID,
			CantidadSolicitada: d.CantidadSolicitada,
			Estado:             entity.DetallePendiente,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	// Cabecera y detalles en una sola transacción: un detalle fallido revierte todo.
	err := uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		detalleRepo repository.DetallePedidoRepository,
		_ repository.SeguimientoRepository,
	) error {
		if err := pedidoRepo.Create(p); err != nil {
			return err
		}
		for _, det := range detalles {
			if err := detalleRepo.Create(det); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PedidosCreados.Inc()
	return uc.toResponse(p, detalles), nil
}

// GetByID obtiene un pedido con sus detalles.
func (uc *PedidoUseCase) GetByID(id string) (*dto.PedidoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.detalleRepo.ListByPedido(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p, detalles), nil
}

// List lista pedidos, opcionalmente filtrados por estado.
func (uc *PedidoUseCase) List(estado string, limit, offset int) ([]*dto.PedidoResponse, error) {
	if estado != "" && !dompedido.EsEstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.pedidoRepo.List(estado, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toResponse(p, nil))
	}
	return out, nil
}

// Update edición plana de campos. Solo permitida mientras el pedido está PENDIENTE;
// fuera de eso falla con ErrInvalidState.
func (uc *PedidoUseCase) Update(id string, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !p.EsEditable() {
		return nil, domain.ErrInvalidState
	}
	if in.Prioridad != nil {
		switch *in.Prioridad {
		case entity.PrioridadAlta, entity.PrioridadMedia, entity.PrioridadBaja:
			p.Prioridad = *in.Prioridad
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.FechaRequerida != nil {
		p.FechaRequerida = in.FechaRequerida
	}
	if in.Observaciones != nil {
		p.Observaciones = *in.Observaciones
	}
	p.UpdatedAt = time.Now()
	if err := uc.pedidoRepo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p, nil), nil
}

// Delete elimina un pedido solo en PENDIENTE, RECHAZADO o CANCELADO.
func (uc *PedidoUseCase) Delete(id string) error {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if !p.EsEliminable() {
		return domain.ErrInvalidState
	}
	return uc.pedidoRepo.Delete(id)
}

// CambiarEstado aplica una transición de la tabla estática. En APROBADO fija
// fecha de autorización y autorizador; en COMPLETADO fija fecha de completado.
// Observaciones y motivo de rechazo sobreescriben cuando vienen. Registra una
// fila de seguimiento en la misma transacción.
func (uc *PedidoUseCase) CambiarEstado(ctx context.Context, id, usuarioID string, in dto.CambiarEstadoRequest) (*dto.PedidoResponse, error) {
	if !dompedido.EsEstadoValido(in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !dompedido.PuedeTransicionar(p.Estado, in.Estado) {
		metrics.TransicionesRechazadas.Inc()
		destinos := dompedido.DestinosPermitidos(p.Estado)
		if len(destinos) == 0 {
			return nil, fmt.Errorf("%w: %s es terminal", domain.ErrInvalidTransition, p.Estado)
		}
		return nil, fmt.Errorf("%w: desde %s solo hacia %s",
			domain.ErrInvalidTransition, p.Estado, strings.Join(destinos, ", "))
	}

	now := time.Now()
	anterior := p.Estado
	p.Estado = in.Estado
	switch in.Estado {
	case entity.PedidoAprobado:
		p.FechaAutorizacion = &now
		if usuarioID != "" {
			p.AutorizadorID = &usuarioID
		}
	case entity.PedidoCompletado:
		p.FechaCompletado = &now
	}
	if in.Observaciones != "" {
		p.Observaciones = in.Observaciones
	}
	if in.MotivoRechazo != "" {
		p.MotivoRechazo = in.MotivoRechazo
	}
	p.UpdatedAt = now

	seg := &entity.Seguimiento{
		ID:             uuid.New().String(),
		PedidoID:       p.ID,
		UsuarioID:      usuarioID,
		EstadoAnterior: anterior,
		EstadoNuevo:    in.Estado,
		Comentario:     in.Observaciones,
		CreatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		_ repository.DetallePedidoRepository,
		seguimientoRepo repository.SeguimientoRepository,
	) error {
		if err := pedidoRepo.Update(p); err != nil {
			return err
		}
		return seguimientoRepo.Create(seg)
	})
	if err != nil {
		return nil, err
	}

	metrics.TransicionesPedido.WithLabelValues(in.Estado).Inc()
	return uc.toResponse(p, nil), nil
}

// ListSeguimientos historial de transiciones de un pedido.
func (uc *PedidoUseCase) ListSeguimientos(pedidoID string) ([]*dto.SeguimientoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.seguimientoRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SeguimientoResponse, 0, len(list))
	for _, s := range list {
		out = append(out, &dto.SeguimientoResponse{
			ID:             s.ID,
			PedidoID:       s.PedidoID,
			UsuarioID:      s.UsuarioID,
			EstadoAnterior: s.EstadoAnterior,
			EstadoNuevo:    s.EstadoNuevo,
			Comentario:     s.Comentario,
			CreatedAt:      s.CreatedAt,
		})
	}
	return out, nil
}

func (uc *PedidoUseCase) toResponse(p *entity.Pedido, detalles []*entity.DetallePedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:                p.ID,
		SolicitanteID:     p.SolicitanteID,
		AutorizadorID:     p.AutorizadorID,
		Estado:            p.Estado,
		Prioridad:         p.Prioridad,
		FechaRequerida:    p.FechaRequerida,
		Observaciones:     p.Observaciones,
		MotivoRechazo:     p.MotivoRechazo,
		FechaAutorizacion: p.FechaAutorizacion,
		FechaCompletado:   p.FechaCompletado,
		CreatedAt:         p.CreatedAt,
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, *toDetalleResponse(d))
	}
	return resp
}

func toDetalleResponse(d *entity.DetallePedido) *dto.DetalleResponse {
	return &dto.DetalleResponse{
		ID:                 d.ID,
		PedidoID:           d.PedidoID,
		MedicamentoID:      d.MedicamentoID,
		CantidadSolicitada: d.CantidadSolicitada,
		CantidadAprobada:   d.CantidadAprobada,
		CantidadEntregada:  d.CantidadEntregada,
		Estado:             d.Estado,
	}
}
