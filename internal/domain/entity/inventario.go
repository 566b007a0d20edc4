package entity

import "time"

// Estados de inventario. El estado es derivado de cantidad vs punto de reorden
// y del vencimiento del lote; nunca es autoritativo por sí mismo.
const (
	EstadoDisponible = "DISPONIBLE"
	EstadoAmarillo   = "AMARILLO"
	EstadoRojo       = "ROJO"
	EstadoVencido    = "VENCIDO"
)

// PuntoReordenDefault punto de reorden cuando no se especifica al crear.
const PuntoReordenDefault = 10

// Inventario representa el stock de un medicamento por lote y distrito.
// Unicidad por (medicamento, lote, distrito).
type Inventario struct {
	ID                 string
	MedicamentoID      string
	LoteID             string
	DistritoID         string
	CantidadDisponible int
	PuntoReorden       int
	Estado             string // DISPONIBLE, AMARILLO, ROJO, VENCIDO
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
