// Package dbx holds the database handle abstractions repositories are
// written against.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx, so a repository bound to it runs
// the same queries inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
