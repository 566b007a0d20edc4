package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

var _ repository.DetallePedidoRepository = (*DetallePedidoRepo)(nil)

// DetallePedidoRepo implementación de DetallePedidoRepository sobre PostgreSQL (usable con pool o tx).
type DetallePedidoRepo struct {
	q Querier
}

// NewDetallePedidoRepository construye el adaptador de detalles. Pasar pool o tx (Querier).
func NewDetallePedidoRepository(q Querier) *DetallePedidoRepo {
	return &DetallePedidoRepo{q: q}
}

const detalleColumns = `id, pedido_id, medicamento_id, cantidad_solicitada, cantidad_aprobada,
	cantidad_entregada, estado, created_at, updated_at`

// Create persiste una línea. Mapea la violación del único (pedido, medicamento) a ErrDuplicate.
func (r *DetallePedidoRepo) Create(d *entity.DetallePedido) error {
	query := `
		INSERT INTO detalle_pedidos (` + detalleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.PedidoID, d.MedicamentoID, d.CantidadSolicitada, d.CantidadAprobada,
		d.CantidadEntregada, d.Estado, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *DetallePedidoRepo) GetByID(id string) (*entity.DetallePedido, error) {
	query := `SELECT ` + detalleColumns + ` FROM detalle_pedidos WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByPedidoYMedicamento obtiene la línea de un medicamento dentro de un pedido.
func (r *DetallePedidoRepo) GetByPedidoYMedicamento(pedidoID, medicamentoID string) (*entity.DetallePedido, error) {
	query := `
		SELECT ` + detalleColumns + ` FROM detalle_pedidos
		WHERE pedido_id = $1 AND medicamento_id = $2`
	return r.scanOne(query, pedidoID, medicamentoID)
}

// ListByPedido lista las líneas de un pedido.
func (r *DetallePedidoRepo) ListByPedido(pedidoID string) ([]*entity.DetallePedido, error) {
	query := `
		SELECT ` + detalleColumns + ` FROM detalle_pedidos
		WHERE pedido_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		if err := rows.Scan(
			&d.ID, &d.PedidoID, &d.MedicamentoID, &d.CantidadSolicitada, &d.CantidadAprobada,
			&d.CantidadEntregada, &d.Estado, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza cantidades y estado de la línea.
func (r *DetallePedidoRepo) Update(d *entity.DetallePedido) error {
	query := `
		UPDATE detalle_pedidos
		SET cantidad_solicitada = $2, cantidad_aprobada = $3, cantidad_entregada = $4,
		    estado = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.CantidadSolicitada, d.CantidadAprobada, d.CantidadEntregada, d.Estado, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update detalle: %w", err)
	}
	return nil
}

// Delete elimina una línea por ID.
func (r *DetallePedidoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM detalle_pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle: %w", err)
	}
	return nil
}

func (r *DetallePedidoRepo) scanOne(query string, args ...any) (*entity.DetallePedido, error) {
	var d entity.DetallePedido
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&d.ID, &d.PedidoID, &d.MedicamentoID, &d.CantidadSolicitada, &d.CantidadAprobada,
		&d.CantidadEntregada, &d.Estado, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle: %w", err)
	}
	return &d, nil
}
