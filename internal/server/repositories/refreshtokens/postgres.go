package refreshtokens

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

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, token string, expiresAt time.Time) (*models.RefreshToken, error) {
	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	rt := &models.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	if err := r.db.QueryRowContext(ctx, query, userID, token, expiresAt).Scan(&rt.ID, &rt.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return rt, nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `
		SELECT rt.id, rt.user_id, rt.token, rt.expires_at, rt.created_at,
		       u.email, u.first_name, u.last_name, u.middle_name, u.is_verified
		FROM refresh_tokens rt
		JOIN users u ON u.id = rt.user_id
		WHERE rt.token = $1
	`
	rt := &models.RefreshToken{Owner: &models.User{}}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt,
		&rt.Owner.Email, &rt.Owner.FirstName, &rt.Owner.LastName, &rt.Owner.MiddleName, &rt.Owner.IsVerified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	rt.Owner.ID = rt.UserID
	return rt, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	query := `
		DELETE FROM refresh_tokens
		WHERE token = $1
	`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return n > 0, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE expires_at < $1
	`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return n, nil
}
