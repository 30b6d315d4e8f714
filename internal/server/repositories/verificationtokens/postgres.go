package verificationtokens

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

func (r *PostgresRepository) Upsert(ctx context.Context, t *models.VerificationToken) error {
	query := `
		INSERT INTO verification_tokens (token, user_id, purpose, expires_at, used)
		VALUES ($1, $2, $3, $4, FALSE)
		ON CONFLICT (user_id, purpose) DO UPDATE
		SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, used = FALSE, created_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, t.Token, t.UserID, t.Purpose, t.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}

func scanToken(row *sql.Row) (*models.VerificationToken, error) {
	t := &models.VerificationToken{}
	if err := row.Scan(&t.Token, &t.UserID, &t.Purpose, &t.ExpiresAt, &t.Used, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return t, nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.VerificationToken, error) {
	query := `
		SELECT token, user_id, purpose, expires_at, used, created_at
		FROM verification_tokens
		WHERE token = $1
	`
	return scanToken(r.db.QueryRowContext(ctx, query, token))
}

func (r *PostgresRepository) FindValid(ctx context.Context, token, purpose string, now time.Time) (*models.VerificationToken, error) {
	query := `
		SELECT token, user_id, purpose, expires_at, used, created_at
		FROM verification_tokens
		WHERE token = $1 AND purpose = $2 AND used = FALSE AND expires_at >= $3
	`
	return scanToken(r.db.QueryRowContext(ctx, query, token, purpose, now))
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, token, purpose string, now time.Time) (bool, error) {
	query := `
		UPDATE verification_tokens SET used = TRUE
		WHERE token = $1 AND purpose = $2 AND used = FALSE AND expires_at >= $3
	`
	res, err := r.db.ExecContext(ctx, query, token, purpose, now)
	if err != nil {
		return false, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return n == 1, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, purpose string, now time.Time) (int64, error) {
	query := `
		DELETE FROM verification_tokens
		WHERE expires_at < $1 AND ($2 = '' OR purpose = $2)
	`
	res, err := r.db.ExecContext(ctx, query, now, purpose)
	if err != nil {
		return 0, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return n, nil
}
