package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin        = "admin"
	RolFarmaceutico = "farmaceutico"
	RolAlmacenero   = "almacenero"
)

// Usuario representa una cuenta del sistema, asociada a una Persona.
type Usuario struct {
	ID           string
	PersonaID    string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Rol          string // admin, farmaceutico, almacenero
	Estado       string // activo, inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
