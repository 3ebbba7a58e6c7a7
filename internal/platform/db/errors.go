package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors shared by every repository implementation. Handlers map
// these onto 404 and 409 responses; anything else is a storage fault.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate value for unique field")
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// TranslateError converts driver-level errors into the package sentinels.
// Unknown errors pass through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
