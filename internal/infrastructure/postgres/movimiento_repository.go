package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
// Los movimientos son inmutables: sin update ni delete.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const movimientoColumns = `id, inventario_id, lote_id, usuario_id, tipo, cantidad, motivo, fecha, created_at`

// Create persiste un movimiento.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (` + movimientoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.InventarioID, nullIfEmpty(m.LoteID), nullIfEmpty(m.UsuarioID),
		m.Tipo, m.Cantidad, m.Motivo, m.Fecha, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE id = $1`
	var m entity.Movimiento
	var loteID, usuarioID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.InventarioID, &loteID, &usuarioID,
		&m.Tipo, &m.Cantidad, &m.Motivo, &m.Fecha, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	m.LoteID = deref(loteID)
	m.UsuarioID = deref(usuarioID)
	return &m, nil
}

// ListByInventario lista movimientos de un inventario, con rango de fechas opcional.
func (r *MovimientoRepo) ListByInventario(inventarioID string, from, to *time.Time, limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos WHERE inventario_id = $1`
	args := []any{inventarioID}
	if from != nil {
		args = append(args, *from)
		query += ` AND fecha >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND fecha <= $` + strconv.Itoa(len(args))
	}
	args = append(args, limit, offset)
	query += ` ORDER BY fecha DESC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	return r.scanMany(query, args...)
}

// List lista movimientos con paginación.
func (r *MovimientoRepo) List(limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

func (r *MovimientoRepo) scanMany(query string, args ...any) ([]*entity.Movimiento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		var loteID, usuarioID *string
		if err := rows.Scan(
			&m.ID, &m.InventarioID, &loteID, &usuarioID,
			&m.Tipo, &m.Cantidad, &m.Motivo, &m.Fecha, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.LoteID = deref(loteID)
		m.UsuarioID = deref(usuarioID)
		list = append(list, &m)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
