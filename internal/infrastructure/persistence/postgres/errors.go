package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// checkRowsAffected validates that an UPDATE/DELETE operation affected at least one row.
// Returns notFound wrapped with the entity id if rowsAffected == 0.
func checkRowsAffected(rowsAffected int64, notFound error, id int64) error {
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %d", notFound, id)
	}
	return nil
}

// isForeignKeyViolation checks if an error is a PostgreSQL FK violation.
// A non-empty constraint restricts the match to that constraint name.
func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.ForeignKeyViolation {
		return false
	}
	if constraint == "" {
		return true
	}
	return strings.Contains(pgErr.ConstraintName, constraint)
}
