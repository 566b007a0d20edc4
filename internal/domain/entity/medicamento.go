package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicamento representa un medicamento del catálogo. Codigo único.
// El stock se maneja por (medicamento, lote, distrito) en Inventario.
type Medicamento struct {
	ID             string
	Codigo         string
	Nombre         string
	Descripcion    string
	Presentacion   string // tabletas, jarabe, ampolla, etc.
	Concentracion  string
	Precio         decimal.Decimal
	RequiereReceta bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
