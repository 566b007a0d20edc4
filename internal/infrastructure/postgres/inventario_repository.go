package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/botica-dev/botica-api/internal/domain"
	"github.com/botica-dev/botica-api/internal/domain/entity"
	"github.com/botica-dev/botica-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador de inventarios. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioColumns = `id, medicamento_id, lote_id, distrito_id, cantidad_disponible, punto_reorden, estado, created_at, updated_at`

// Create persiste un nuevo inventario.
func (r *InventarioRepo) Create(inv *entity.Inventario) error {
	query := `
		INSERT INTO inventarios (` + inventarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.MedicamentoID, inv.LoteID, inv.DistritoID,
		inv.CantidadDisponible, inv.PuntoReorden, inv.Estado,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// GetByID obtiene un inventario por ID.
func (r *InventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventarios WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el inventario y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *InventarioRepo) GetForUpdate(id string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventarios WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// GetByClave obtiene el inventario por la tripleta (medicamento, lote, distrito).
func (r *InventarioRepo) GetByClave(medicamentoID, loteID, distritoID string) (*entity.Inventario, error) {
	query := `
		SELECT ` + inventarioColumns + ` FROM inventarios
		WHERE medicamento_id = $1 AND lote_id = $2 AND distrito_id = $3`
	return r.scanOne(query, medicamentoID, loteID, distritoID)
}

// List lista inventarios con paginación.
func (r *InventarioRepo) List(limit, offset int) ([]*entity.Inventario, error) {
	query := `
		SELECT ` + inventarioColumns + ` FROM inventarios
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListByDistrito lista los inventarios de un distrito con paginación.
func (r *InventarioRepo) ListByDistrito(distritoID string, limit, offset int) ([]*entity.Inventario, error) {
	query := `
		SELECT ` + inventarioColumns + ` FROM inventarios
		WHERE distrito_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.scanMany(query, distritoID, limit, offset)
}

// Update actualiza cantidad, punto de reorden y estado.
func (r *InventarioRepo) Update(inv *entity.Inventario) error {
	query := `
		UPDATE inventarios
		SET cantidad_disponible = $2, punto_reorden = $3, estado = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.CantidadDisponible, inv.PuntoReorden, inv.Estado, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventario: %w", err)
	}
	return nil
}

// Delete elimina un inventario por ID.
func (r *InventarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventario: %w", err)
	}
	return nil
}

// MarcarVencidos pone VENCIDO todo inventario cuyo lote venció en o antes de hoy.
func (r *InventarioRepo) MarcarVencidos(hoy time.Time) (int64, error) {
	query := `
		UPDATE inventarios i
		SET estado = 'VENCIDO', updated_at = now()
		FROM lotes l
		WHERE l.id = i.lote_id
		  AND l.fecha_vencimiento <= $1
		  AND i.estado <> 'VENCIDO'`
	tag, err := r.q.Exec(context.Background(), query, hoy)
	if err != nil {
		return 0, fmt.Errorf("marcar vencidos: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarcarPorVencer pone AMARILLO los inventarios DISPONIBLE cuyo lote vence dentro
// del horizonte. No toca filas VENCIDO ni ROJO.
func (r *InventarioRepo) MarcarPorVencer(hoy time.Time, horizonteDias int) (int64, error) {
	query := `
		UPDATE inventarios i
		SET estado = 'AMARILLO', updated_at = now()
		FROM lotes l
		WHERE l.id = i.lote_id
		  AND l.fecha_vencimiento > $1
		  AND l.fecha_vencimiento <= $1 + ($2 || ' days')::interval
		  AND i.estado = 'DISPONIBLE'`
	tag, err := r.q.Exec(context.Background(), query, hoy, horizonteDias)
	if err != nil {
		return 0, fmt.Errorf("marcar por vencer: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *InventarioRepo) scanOne(query string, args ...any) (*entity.Inventario, error) {
	var inv entity.Inventario
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.MedicamentoID, &inv.LoteID, &inv.DistritoID,
		&inv.CantidadDisponible, &inv.PuntoReorden, &inv.Estado,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &inv, nil
}

func (r *InventarioRepo) scanMany(query string, args ...any) ([]*entity.Inventario, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventario
	for rows.Next() {
		var inv entity.Inventario
		if err := rows.Scan(
			&inv.ID, &inv.MedicamentoID, &inv.LoteID, &inv.DistritoID,
			&inv.CantidadDisponible, &inv.PuntoReorden, &inv.Estado,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
