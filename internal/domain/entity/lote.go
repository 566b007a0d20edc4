package entity

import "time"

// Lote representa un lote de fabricación de un medicamento.
// FechaVencimiento gobierna los estados VENCIDO / por vencer del inventario asociado.
type Lote struct {
	ID               string
	MedicamentoID    string
	Codigo           string
	FechaFabricacion time.Time
	FechaVencimiento time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
