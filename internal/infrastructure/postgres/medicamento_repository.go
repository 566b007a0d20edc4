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

var _ repository.MedicamentoRepository = (*MedicamentoRepo)(nil)

// MedicamentoRepo implementación de MedicamentoRepository sobre PostgreSQL.
// El precio es NUMERIC y viaja como shopspring/decimal vía el codec del pool.
type MedicamentoRepo struct {
	q Querier
}

// NewMedicamentoRepository construye el adaptador del catálogo de medicamentos.
func NewMedicamentoRepository(q Querier) *MedicamentoRepo {
	return &MedicamentoRepo{q: q}
}

const medicamentoColumns = `id, codigo, nombre, descripcion, presentacion, concentracion,
	precio, requiere_receta, created_at, updated_at`

// Create persiste un medicamento. Código único mapea a ErrDuplicate.
func (r *MedicamentoRepo) Create(m *entity.Medicamento) error {
	query := `
		INSERT INTO medicamentos (` + medicamentoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Codigo, m.Nombre, m.Descripcion, m.Presentacion, m.Concentracion,
		m.Precio, m.RequiereReceta, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicamento: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID.
func (r *MedicamentoRepo) GetByID(id string) (*entity.Medicamento, error) {
	query := `SELECT ` + medicamentoColumns + ` FROM medicamentos WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCodigo obtiene un medicamento por su código único.
func (r *MedicamentoRepo) GetByCodigo(codigo string) (*entity.Medicamento, error) {
	query := `SELECT ` + medicamentoColumns + ` FROM medicamentos WHERE codigo = $1`
	return r.scanOne(query, codigo)
}

// List lista medicamentos con paginación.
func (r *MedicamentoRepo) List(limit, offset int) ([]*entity.Medicamento, error) {
	query := `SELECT ` + medicamentoColumns + ` FROM medicamentos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medicamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicamento
	for rows.Next() {
		var m entity.Medicamento
		if err := rows.Scan(
			&m.ID, &m.Codigo, &m.Nombre, &m.Descripcion, &m.Presentacion, &m.Concentracion,
			&m.Precio, &m.RequiereReceta, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan medicamento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables. El código no se toca.
func (r *MedicamentoRepo) Update(m *entity.Medicamento) error {
	query := `
		UPDATE medicamentos
		SET nombre = $2, descripcion = $3, presentacion = $4, concentracion = $5,
		    precio = $6, requiere_receta = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Descripcion, m.Presentacion, m.Concentracion,
		m.Precio, m.RequiereReceta, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update medicamento: %w", err)
	}
	return nil
}

// Delete elimina un medicamento por ID.
func (r *MedicamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medicamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicamento: %w", err)
	}
	return nil
}

func (r *MedicamentoRepo) scanOne(query string, args ...any) (*entity.Medicamento, error) {
	var m entity.Medicamento
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.Codigo, &m.Nombre, &m.Descripcion, &m.Presentacion, &m.Concentracion,
		&m.Precio, &m.RequiereReceta, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicamento: %w", err)
	}
	return &m, nil
}
