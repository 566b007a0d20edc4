package entity

import "time"

// Distrito representa la ubicación geográfica de un inventario o una persona.
type Distrito struct {
	ID           string
	Nombre       string
	Provincia    string
	Departamento string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
