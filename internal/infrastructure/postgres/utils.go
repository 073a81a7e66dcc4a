package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de violación de índice único.
const uniqueViolation = "23505"

// isUniqueViolation detecta un choque con un índice único (username o nombre
// duplicado) para traducirlo al error de dominio que corresponda.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), uniqueViolation)
}
