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

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación de LoteRepository sobre PostgreSQL.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador de lotes.
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteColumns = `id, medicamento_id, codigo, fecha_fabricacion, fecha_vencimiento, created_at, updated_at`

// Create persiste un lote. (medicamento, codigo) único mapea a ErrDuplicate.
func (r *LoteRepo) Create(l *entity.Lote) error {
	query := `
		INSERT INTO lotes (` + loteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.MedicamentoID, l.Codigo, l.FechaFabricacion, l.FechaVencimiento,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE id = $1`
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.MedicamentoID, &l.Codigo, &l.FechaFabricacion, &l.FechaVencimiento,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// ListByMedicamento lista los lotes de un medicamento, próximos a vencer primero.
func (r *LoteRepo) ListByMedicamento(medicamentoID string, limit, offset int) ([]*entity.Lote, error) {
	query := `
		SELECT ` + loteColumns + ` FROM lotes
		WHERE medicamento_id = $1 ORDER BY fecha_vencimiento LIMIT $2 OFFSET $3`
	return r.scanMany(query, medicamentoID, limit, offset)
}

// List lista lotes con paginación.
func (r *LoteRepo) List(limit, offset int) ([]*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes ORDER BY fecha_vencimiento LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// Update actualiza un lote.
func (r *LoteRepo) Update(l *entity.Lote) error {
	query := `
		UPDATE lotes
		SET codigo = $2, fecha_fabricacion = $3, fecha_vencimiento = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Codigo, l.FechaFabricacion, l.FechaVencimiento, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *LoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lote: %w", err)
	}
	return nil
}

func (r *LoteRepo) scanMany(query string, args ...any) ([]*entity.Lote, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(
			&l.ID, &l.MedicamentoID, &l.Codigo, &l.FechaFabricacion, &l.FechaVencimiento,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
