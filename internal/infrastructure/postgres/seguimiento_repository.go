package postgres

import (
	"context"
	"fmt"

	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

var _ repository.SeguimientoRepository = (*SeguimientoRepo)(nil)

// SeguimientoRepo implementación de SeguimientoRepository sobre PostgreSQL (usable con pool o tx).
// Historial de auditoría: solo inserción y lectura.
type SeguimientoRepo struct {
	q Querier
}

// NewSeguimientoRepository construye el adaptador de seguimientos. Pasar pool o tx (Querier).
func NewSeguimientoRepository(q Querier) *SeguimientoRepo {
	return &SeguimientoRepo{q: q}
}

// Create persiste una fila de seguimiento.
func (r *SeguimientoRepo) Create(s *entity.Seguimiento) error {
	query := `
		INSERT INTO seguimientos (id, pedido_id, usuario_id, estado_anterior, estado_nuevo, comentario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.PedidoID, nullIfEmpty(s.UsuarioID), s.EstadoAnterior, s.EstadoNuevo, s.Comentario, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seguimiento: %w", err)
	}
	return nil
}

// ListByPedido lista el historial de un pedido en orden cronológico.
func (r *SeguimientoRepo) ListByPedido(pedidoID string) ([]*entity.Seguimiento, error) {
	query := `
		SELECT id, pedido_id, usuario_id, estado_anterior, estado_nuevo, comentario, created_at
		FROM seguimientos WHERE pedido_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list seguimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seguimiento
	for rows.Next() {
		var s entity.Seguimiento
		var usuarioID *string
		if err := rows.Scan(&s.ID, &s.PedidoID, &usuarioID, &s.EstadoAnterior, &s.EstadoNuevo, &s.Comentario, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan seguimiento: %w", err)
		}
		s.UsuarioID = deref(usuarioID)
		list = append(list, &s)
	}
	return list, rows.Err()
}
