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

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

// PersonaRepo implementación de PersonaRepository sobre PostgreSQL.
type PersonaRepo struct {
	q Querier
}

// NewPersonaRepository construye el adaptador de personas.
func NewPersonaRepository(q Querier) *PersonaRepo {
	return &PersonaRepo{q: q}
}

const personaColumns = `id, dni, nombres, apellidos, telefono, direccion, distrito_id, created_at, updated_at`

// Create persiste una persona. DNI único mapea a ErrDuplicate.
func (r *PersonaRepo) Create(p *entity.Persona) error {
	query := `
		INSERT INTO personas (` + personaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.DNI, p.Nombres, p.Apellidos, p.Telefono, p.Direccion,
		nullIfEmpty(p.DistritoID), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *PersonaRepo) GetByID(id string) (*entity.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByDNI obtiene una persona por DNI.
func (r *PersonaRepo) GetByDNI(dni string) (*entity.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas WHERE dni = $1`
	return r.scanOne(query, dni)
}

// List lista personas con paginación.
func (r *PersonaRepo) List(limit, offset int) ([]*entity.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas ORDER BY apellidos, nombres LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Persona
	for rows.Next() {
		p, err := scanPersona(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza una persona. El DNI no se toca.
func (r *PersonaRepo) Update(p *entity.Persona) error {
	query := `
		UPDATE personas
		SET nombres = $2, apellidos = $3, telefono = $4, direccion = $5, distrito_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombres, p.Apellidos, p.Telefono, p.Direccion, nullIfEmpty(p.DistritoID), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update persona: %w", err)
	}
	return nil
}

// Delete elimina una persona por ID.
func (r *PersonaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM personas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete persona: %w", err)
	}
	return nil
}

func (r *PersonaRepo) scanOne(query string, args ...any) (*entity.Persona, error) {
	p, err := scanPersona(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return p, nil
}

func scanPersona(row pgx.Row) (*entity.Persona, error) {
	var p entity.Persona
	var distritoID *string
	if err := row.Scan(
		&p.ID, &p.DNI, &p.Nombres, &p.Apellidos, &p.Telefono, &p.Direccion,
		&distritoID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.DistritoID = deref(distritoID)
	return &p, nil
}
