package entity

import "time"

// Seguimiento registro de auditoría de una transición de estado de un pedido.
// Se inserta una fila por cada transición exitosa.
type Seguimiento struct {
	ID             string
	PedidoID       string
	UsuarioID      string
	EstadoAnterior string
	EstadoNuevo    string
	Comentario     string
	CreatedAt      time.Time
}
