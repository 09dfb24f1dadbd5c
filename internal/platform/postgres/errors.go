package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// PostgreSQL error codes
const (
	// checkViolationCode is raised when a doc is not a JSON object.
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// invalidTextRepresentationCode is raised for malformed JSON input.
	invalidTextRepresentationCode = "22P02"

	// invalidRegexCode is raised when a title pattern cannot be compiled.
	invalidRegexCode = "2201B"

	// untranslatableCharacterCode is raised for \u0000 in JSON strings.
	untranslatableCharacterCode = "22P05"
)

// MapError maps a database error to a store error.
// It wraps the original error to preserve context for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case checkViolationCode, notNullViolationCode,
			invalidTextRepresentationCode, invalidRegexCode, untranslatableCharacterCode:
			return fmt.Errorf("%w: %v", store.ErrInvalidDocument, err)
		}
	}

	// Connection failures, timeouts and server errors are not retried.
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}

// IsCheckConstraintViolation checks if the given error is a PostgreSQL check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}
