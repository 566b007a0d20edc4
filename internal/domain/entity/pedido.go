package entity

import "time"

// Estados de pedido. COMPLETADO es terminal.
const (
	PedidoPendiente  = "PENDIENTE"
	PedidoAprobado   = "APROBADO"
	PedidoRechazado  = "RECHAZADO"
	PedidoEnProceso  = "EN_PROCESO"
	PedidoCompletado = "COMPLETADO"
	PedidoCancelado  = "CANCELADO"
)

// Prioridades de pedido.
const (
	PrioridadAlta  = "ALTA"
	PrioridadMedia = "MEDIA"
	PrioridadBaja  = "BAJA"
)

// Pedido cabecera de una requisición de medicamentos con una o más líneas de detalle.
// Nace PENDIENTE; las transiciones válidas están en internal/domain/pedido.
type Pedido struct {
	ID                string
	SolicitanteID     string
	AutorizadorID     *string // nil hasta que alguien lo autoriza
	Estado            string
	Prioridad         string // ALTA, MEDIA, BAJA
	FechaRequerida    *time.Time
	Observaciones     string
	MotivoRechazo     string
	FechaAutorizacion *time.Time
	FechaCompletado   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EsEditable indica si los campos del pedido pueden modificarse con un update plano.
func (p *Pedido) EsEditable() bool {
	return p.Estado == PedidoPendiente
}

// EsEliminable indica si el pedido puede eliminarse.
func (p *Pedido) EsEliminable() bool {
	switch p.Estado {
	case PedidoPendiente, PedidoRechazado, PedidoCancelado:
		return true
	}
	return false
}
