package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de PostgreSQL que se traducen a errores de dominio.
const uniqueViolation = "23505"

// isUniqueViolation indica si err (o alguno que envuelva) es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
