package entity

import "time"

// Tipos de movimiento de inventario.
// Solo ENTRADA y SALIDA afectan la cantidad disponible; TRANSFERENCIA, AJUSTE y
// DEVOLUCION dejan traza en el historial sin tocar el stock.
const (
	MovimientoEntrada       = "ENTRADA"
	MovimientoSalida        = "SALIDA"
	MovimientoTransferencia = "TRANSFERENCIA"
	MovimientoAjuste        = "AJUSTE"
	MovimientoDevolucion    = "DEVOLUCION"
)

// Movimiento representa un evento registrado contra un inventario. Inmutable una vez creado.
type Movimiento struct {
	ID           string
	InventarioID string
	LoteID       string
	UsuarioID    string
	Tipo         string
	Cantidad     int // siempre positivo; el tipo determina el signo del efecto
	Motivo       string
	Fecha        time.Time
	CreatedAt    time.Time
}
