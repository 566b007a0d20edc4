package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/botica-dev/botica-api/internal/application/dto"
	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	dominv "github.com/botica-dev/botica-api/internal/domain/inventario"
	"github.com/botica-dev/botica-api/internal/domain/repository"
	"github.com/botica-dev/botica-api/pkg/metrics"
)

// RegistrarMovimientoUseCase registra movimientos de inventario de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Solo ENTRADA y SALIDA mutan la cantidad disponible. TRANSFERENCIA, AJUSTE y
// DEVOLUCION se persisten como registro sin efecto sobre el stock.
type RegistrarMovimientoUseCase struct {
	txRunner TxRunner
	invRepo  repository.InventarioRepository
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner, invRepo repository.InventarioRepository) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner, invRepo: invRepo}
}

// Registrar valida la entrada, abre una transacción, bloquea la fila del inventario,
// aplica el efecto según tipo y persiste el movimiento. Errores:
//   - ErrInvalidInput: tipo desconocido o cantidad <= 0
//   - ErrNotFound: el inventario no existe
//   - ErrInsufficientStock: SALIDA mayor al disponible (la cantidad queda intacta)
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, usuarioID string, in dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	switch in.Tipo {
	case entity.MovimientoEntrada, entity.MovimientoSalida,
		entity.MovimientoTransferencia, entity.MovimientoAjuste, entity.MovimientoDevolucion:
	default:
		metrics.MovimientosRechazados.WithLabelValues("tipo_invalido").Inc()
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad <= 0 {
		metrics.MovimientosRechazados.WithLabelValues("cantidad_invalida").Inc()
		return nil, domain.ErrInvalidInput
	}
	if in.InventarioID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Existencia fuera de la tx para fallar temprano; la verificación con bloqueo
	// se repite dentro.
	inv, err := uc.invRepo.GetByID(in.InventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.Movimiento{
		ID:           uuid.New().String(),
		InventarioID: in.InventarioID,
		LoteID:       inv.LoteID,
		UsuarioID:    usuarioID,
		Tipo:         in.Tipo,
		Cantidad:     in.Cantidad,
		Motivo:       in.Motivo,
		Fecha:        now,
		CreatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventarioRepository,
		movRepo repository.MovimientoRepository,
	) error {
		switch in.Tipo {
		case entity.MovimientoEntrada, entity.MovimientoSalida:
			// Bloquea la fila para evitar que dos salidas concurrentes lean el
			// mismo stock y sobregiren.
			locked, err := invRepo.GetForUpdate(in.InventarioID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			if in.Tipo == entity.MovimientoSalida {
				if in.Cantidad > locked.CantidadDisponible {
					return domain.ErrInsufficientStock
				}
				locked.CantidadDisponible -= in.Cantidad
			} else {
				locked.CantidadDisponible += in.Cantidad
			}
			locked.Estado = dominv.DerivarEstado(locked.CantidadDisponible, locked.PuntoReorden, locked.Estado)
			locked.UpdatedAt = now
			if err := invRepo.Update(locked); err != nil {
				return err
			}
		}
		// TRANSFERENCIA/AJUSTE/DEVOLUCION: solo registro, sin efecto de cantidad.
		return movRepo.Create(mov)
	})
	if err != nil {
		if err == domain.ErrInsufficientStock {
			metrics.MovimientosRechazados.WithLabelValues("stock_insuficiente").Inc()
		}
		return nil, err
	}

	metrics.MovimientosRegistrados.WithLabelValues(in.Tipo).Inc()
	return &dto.MovimientoResponse{
		ID:           mov.ID,
		InventarioID: mov.InventarioID,
		LoteID:       mov.LoteID,
		UsuarioID:    mov.UsuarioID,
		Tipo:         mov.Tipo,
		Cantidad:     mov.Cantidad,
		Motivo:       mov.Motivo,
		Fecha:        mov.Fecha,
	}, nil
}
