package entity

import "time"

// Persona datos personales de un usuario o solicitante. DNI único.
type Persona struct {
	ID         string
	DNI        string
	Nombres    string
	Apellidos  string
	Telefono   string
	Direccion  string
	DistritoID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
