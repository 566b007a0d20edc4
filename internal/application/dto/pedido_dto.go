package dto

import "time"

// CreateDetalleRequest línea de detalle dentro de la creación de un pedido.
type CreateDetalleRequest struct {
	MedicamentoID      string `json:"medicamento_id"`
	CantidadSolicitada int    `json:"cantidad_solicitada"`
}

// CreatePedidoRequest body para POST /api/pedidos. Requiere al menos un detalle.
type CreatePedidoRequest struct {
	Prioridad      string                 `json:"prioridad,omitempty"` // default MEDIA
	FechaRequerida *time.Time             `json:"fecha_requerida,omitempty"`
	Observaciones  string                 `json:"observaciones,omitempty"`
	Detalles       []CreateDetalleRequest `json:"detalles"`
}

// UpdatePedidoRequest body para PUT /api/pedidos/:id. Solo válido en PENDIENTE.
type UpdatePedidoRequest struct {
	Prioridad      *string    `json:"prioridad,omitempty"`
	FechaRequerida *time.Time `json:"fecha_requerida,omitempty"`
	Observaciones  *string    `json:"observaciones,omitempty"`
}

// CambiarEstadoRequest body para PATCH /api/pedidos/:id/estado.
type CambiarEstadoRequest struct {
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones,omitempty"`
	MotivoRechazo string `json:"motivo_rechazo,omitempty"`
}

// AprobarDetalleRequest body para PATCH /api/pedidos/:id/detalles/:detalleId/aprobar.
type AprobarDetalleRequest struct {
	CantidadAprobada int `json:"cantidad_aprobada"`
}

// EntregarDetalleRequest body para PATCH /api/pedidos/:id/detalles/:detalleId/entregar.
type EntregarDetalleRequest struct {
	Cantidad int `json:"cantidad"`
}

// DetalleResponse línea de detalle con su sub-ciclo de aprobación/entrega.
type DetalleResponse struct {
	ID                 string `json:"id"`
	PedidoID           string `json:"pedido_id"`
	MedicamentoID      string `json:"medicamento_id"`
	CantidadSolicitada int    `json:"cantidad_solicitada"`
	CantidadAprobada   *int   `json:"cantidad_aprobada,omitempty"`
	CantidadEntregada  int    `json:"cantidad_entregada"`
	Estado             string `json:"estado"`
}

// PedidoResponse pedido con sus detalles.
type PedidoResponse struct {
	ID                string            `json:"id"`
	SolicitanteID     string            `json:"solicitante_id"`
	AutorizadorID     *string           `json:"autorizador_id,omitempty"`
	Estado            string            `json:"estado"`
	Prioridad         string            `json:"prioridad"`
	FechaRequerida    *time.Time        `json:"fecha_requerida,omitempty"`
	Observaciones     string            `json:"observaciones,omitempty"`
	MotivoRechazo     string            `json:"motivo_rechazo,omitempty"`
	FechaAutorizacion *time.Time        `json:"fecha_autorizacion,omitempty"`
	FechaCompletado   *time.Time        `json:"fecha_completado,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	Detalles          []DetalleResponse `json:"detalles,omitempty"`
}

// SeguimientoResponse una entrada del historial de transiciones.
type SeguimientoResponse struct {
	ID             string    `json:"id"`
	PedidoID       string    `json:"pedido_id"`
	UsuarioID      string    `json:"usuario_id"`
	EstadoAnterior string    `json:"estado_anterior"`
	EstadoNuevo    string    `json:"estado_nuevo"`
	Comentario     string    `json:"comentario,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
