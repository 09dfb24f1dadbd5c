package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the SQL access layer.
// It is implemented by both *sql.DB and *sql.Tx and is what the
// PostgreSQL adapter is built on.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
