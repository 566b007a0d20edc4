package dto

import "time"

// CreateInventarioRequest body para POST /api/inventarios.
type CreateInventarioRequest struct {
	MedicamentoID      string `json:"medicamento_id"`
	LoteID             string `json:"lote_id"`
	DistritoID         string `json:"distrito_id"`
	CantidadDisponible int    `json:"cantidad_disponible"`
	PuntoReorden       *int   `json:"punto_reorden,omitempty"` // default 10
}

// UpdateInventarioRequest body para PUT /api/inventarios/:id. Edición directa de
// cantidad o punto de reorden; el estado se recalcula, nunca se acepta del cliente.
type UpdateInventarioRequest struct {
	CantidadDisponible *int `json:"cantidad_disponible,omitempty"`
	PuntoReorden       *int `json:"punto_reorden,omitempty"`
}

// InventarioResponse inventario con su estado derivado.
type InventarioResponse struct {
	ID                 string    `json:"id"`
	MedicamentoID      string    `json:"medicamento_id"`
	LoteID             string    `json:"lote_id"`
	DistritoID         string    `json:"distrito_id"`
	CantidadDisponible int       `json:"cantidad_disponible"`
	PuntoReorden       int       `json:"punto_reorden"`
	Estado             string    `json:"estado"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RegistrarMovimientoRequest body para POST /api/movimientos.
type RegistrarMovimientoRequest struct {
	InventarioID string `json:"inventario_id"`
	Tipo         string `json:"tipo"` // ENTRADA, SALIDA, TRANSFERENCIA, AJUSTE, DEVOLUCION
	Cantidad     int    `json:"cantidad"`
	Motivo       string `json:"motivo,omitempty"`
}

// MovimientoResponse movimiento registrado.
type MovimientoResponse struct {
	ID           string    `json:"id"`
	InventarioID string    `json:"inventario_id"`
	LoteID       string    `json:"lote_id"`
	UsuarioID    string    `json:"usuario_id"`
	Tipo         string    `json:"tipo"`
	Cantidad     int       `json:"cantidad"`
	Motivo       string    `json:"motivo,omitempty"`
	Fecha        time.Time `json:"fecha"`
}

// VencimientosResponse resultado del barrido de vencimientos.
type VencimientosResponse struct {
	Vencidos  int64 `json:"vencidos"`
	PorVencer int64 `json:"por_vencer"`
}
