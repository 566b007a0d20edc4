package entity

import "time"

// Estados propios de una línea de detalle (independientes del estado del pedido).
const (
	DetallePendiente  = "PENDIENTE"
	DetalleAprobado   = "APROBADO"
	DetalleParcial    = "PARCIAL"
	DetalleCompletado = "COMPLETADO"
	DetalleRechazado  = "RECHAZADO"
)

// DetallePedido una línea de medicamento dentro de un pedido.
// Unicidad por (pedido, medicamento). CantidadEntregada acumula entregas parciales.
type DetallePedido struct {
	ID                 string
	PedidoID           string
	MedicamentoID      string
	CantidadSolicitada int
	CantidadAprobada   *int // nil hasta la aprobación; nunca mayor que la solicitada
	CantidadEntregada  int
	Estado             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
