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

var _ repository.DistritoRepository = (*DistritoRepo)(nil)

// DistritoRepo implementación de DistritoRepository sobre PostgreSQL.
type DistritoRepo struct {
	q Querier
}

// NewDistritoRepository construye el adaptador de distritos.
func NewDistritoRepository(q Querier) *DistritoRepo {
	return &DistritoRepo{q: q}
}

// Create persiste un distrito.
func (r *DistritoRepo) Create(d *entity.Distrito) error {
	query := `
		INSERT INTO distritos (id, nombre, provincia, departamento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Nombre, d.Provincia, d.Departamento, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert distrito: %w", err)
	}
	return nil
}

// GetByID obtiene un distrito por ID.
func (r *DistritoRepo) GetByID(id string) (*entity.Distrito, error) {
	query := `
		SELECT id, nombre, provincia, departamento, created_at, updated_at
		FROM distritos WHERE id = $1`
	var d entity.Distrito
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Nombre, &d.Provincia, &d.Departamento, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distrito: %w", err)
	}
	return &d, nil
}

// List lista distritos con paginación.
func (r *DistritoRepo) List(limit, offset int) ([]*entity.Distrito, error) {
	query := `
		SELECT id, nombre, provincia, departamento, created_at, updated_at
		FROM distritos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list distritos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distrito
	for rows.Next() {
		var d entity.Distrito
		if err := rows.Scan(&d.ID, &d.Nombre, &d.Provincia, &d.Departamento, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distrito: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un distrito.
func (r *DistritoRepo) Update(d *entity.Distrito) error {
	query := `
		UPDATE distritos SET nombre = $2, provincia = $3, departamento = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, d.ID, d.Nombre, d.Provincia, d.Departamento, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update distrito: %w", err)
	}
	return nil
}

// Delete elimina un distrito por ID.
func (r *DistritoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM distritos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete distrito: %w", err)
	}
	return nil
}
