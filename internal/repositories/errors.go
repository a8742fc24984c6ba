package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation is returned when an insert or update breaks a unique
// constraint (duplicate email). Services map it to their own sentinel error
// so the raw constraint detail never leaves the persistence boundary.
var ErrUniqueViolation = errors.New("unique constraint violation")

// uniqueViolationCode is the Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
