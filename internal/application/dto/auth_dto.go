package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// RegisterRequest body para POST /api/auth/register (solo admin).
type RegisterRequest struct {
	PersonaID string `json:"persona_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Rol       string `json:"rol,omitempty"`
}

// UsuarioResponse usuario sin hash de contraseña.
type UsuarioResponse struct {
	ID        string    `json:"id"`
	PersonaID string    `json:"persona_id"`
	Username  string    `json:"username"`
	Rol       string    `json:"rol"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateUsuarioRequest body para PUT /api/usuarios/:id. Campos opcionales.
type UpdateUsuarioRequest struct {
	Rol      *string `json:"rol,omitempty"`
	Estado   *string `json:"estado,omitempty"`
	Password *string `json:"password,omitempty"`
}
