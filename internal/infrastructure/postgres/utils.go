package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de PostgreSQL para violación de constraint UNIQUE.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un índice único (tripleta de
// inventario, username, DNI...) para traducirlo a ErrDuplicate en los repos.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
