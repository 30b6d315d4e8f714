package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// Transactor hands out the default connection and runs work atomically.
// Services depend on it instead of *sql.DB so the same code runs against
// Postgres and the in-memory store.
type Transactor interface {
	Conn() DBTX
	WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLTransactor is a Transactor backed by a *sql.DB.
type SQLTransactor struct {
	db   *sql.DB
	opts *sql.TxOptions
}

func NewSQLTransactor(db *sql.DB, opts *sql.TxOptions) *SQLTransactor {
	return &SQLTransactor{db: db, opts: opts}
}

// NewReadCommittedTransactor is the isolation the Postgres repositories are
// written for: single-statement conditional updates carry the races.
func NewReadCommittedTransactor(db *sql.DB) *SQLTransactor {
	return NewSQLTransactor(db, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (t *SQLTransactor) Conn() DBTX {
	return t.db
}

// WithTx commits when fn returns nil and rolls back otherwise. A panic in fn
// rolls back and is re-raised. Errors returned by fn come back unwrapped.
func (t *SQLTransactor) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := t.db.BeginTx(ctx, t.opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	return fn(ctx, tx)
}
