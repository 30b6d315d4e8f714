package pins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Pin) error {
	query := `
		INSERT INTO pins (account_id, salt, hash, failed_attempts, is_locked, last_failed_attempt)
		VALUES ($1, $2, $3, 0, FALSE, NULL)
		ON CONFLICT (account_id) DO UPDATE
		SET salt = EXCLUDED.salt, hash = EXCLUDED.hash,
		    failed_attempts = 0, is_locked = FALSE, last_failed_attempt = NULL, updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, p.AccountID, p.Salt, p.Hash); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, accountID string) (*models.Pin, error) {
	query := `
		SELECT account_id, salt, hash, failed_attempts, is_locked, last_failed_attempt, updated_at
		FROM pins
		WHERE account_id = $1
	`
	p := &models.Pin{}
	var last sql.NullTime
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(
		&p.AccountID, &p.Salt, &p.Hash, &p.FailedAttempts, &p.IsLocked, &last, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	if last.Valid {
		p.LastFailedAttempt = &last.Time
	}
	return p, nil
}

func (r *PostgresRepository) RecordFailure(ctx context.Context, accountID string, now time.Time, maxAttempts int, lockedSince time.Time) (*models.Pin, error) {
	query := `
		UPDATE pins
		SET failed_attempts = CASE WHEN is_locked THEN 1 ELSE failed_attempts + 1 END,
		    is_locked = (CASE WHEN is_locked THEN 1 ELSE failed_attempts + 1 END) >= $2,
		    last_failed_attempt = $3,
		    updated_at = now()
		WHERE account_id = $1
		  AND NOT (is_locked AND last_failed_attempt > $4)
		RETURNING failed_attempts, is_locked
	`
	p := &models.Pin{AccountID: accountID, LastFailedAttempt: &now}
	err := r.db.QueryRowContext(ctx, query, accountID, maxAttempts, now, lockedSince).Scan(&p.FailedAttempts, &p.IsLocked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAccountLocked
		}
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return p, nil
}

func (r *PostgresRepository) ResetFailures(ctx context.Context, accountID string, lockedSince time.Time) (bool, error) {
	query := `
		UPDATE pins
		SET failed_attempts = 0, is_locked = FALSE, last_failed_attempt = NULL, updated_at = now()
		WHERE account_id = $1
		  AND NOT (is_locked AND last_failed_attempt > $2)
	`
	res, err := r.db.ExecContext(ctx, query, accountID, lockedSince)
	if err != nil {
		return false, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return n == 1, nil
}
