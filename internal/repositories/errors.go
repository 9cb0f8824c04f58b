package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes for schema-configuration failures. These are the Postgres
// analogue of a missing index in a hosted document store: the query is fine,
// the database just has not been prepared for it.
const (
	codeUndefinedTable  = "42P01"
	codeUndefinedObject = "42704"
)

// translateError rewrites schema-configuration failures into an actionable
// message instead of a generic one. Other errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedTable, codeUndefinedObject:
			return fmt.Errorf("database schema is not set up (%s): run migrations before serving requests: %w", pgErr.Code, err)
		}
	}

	return err
}
