package loginattempts

import (
	"context"
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

func (r *PostgresRepository) Create(ctx context.Context, a *models.LoginAttempt) error {
	query := `
		INSERT INTO login_attempts (user_id, ip_address, user_agent, success, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, a.UserID, a.IPAddress, a.UserAgent, a.Success, a.CreatedAt).Scan(&a.ID); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.LoginAttempt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	defer rows.Close()

	var out []*models.LoginAttempt
	for rows.Next() {
		a := &models.LoginAttempt{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.IPAddress, &a.UserAgent, &a.Success, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return out, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.LoginAttempt, error) {
	query := `
		SELECT id, user_id, ip_address, user_agent, success, created_at
		FROM login_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, userID, limit)
}

func (r *PostgresRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.LoginAttempt, error) {
	query := `
		SELECT id, user_id, ip_address, user_agent, success, created_at
		FROM login_attempts
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at
	`
	return r.list(ctx, query, from, to)
}
