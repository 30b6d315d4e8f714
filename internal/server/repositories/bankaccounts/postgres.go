package bankaccounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.BankAccount) (*models.BankAccount, error) {
	query := `
		INSERT INTO bank_accounts (user_id, account_number, account_name, account_type, balance, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		a.UserID, a.AccountNumber, a.AccountName, a.AccountType, a.Balance, a.Currency,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("account number %s: %w", a.AccountNumber, common.ErrorConflict)
		}
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return a, nil
}

func (r *PostgresRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bank_accounts WHERE account_number = $1)`
	if err := r.db.QueryRowContext(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return exists, nil
}

func (r *PostgresRepository) LockUser(ctx context.Context, userID string) error {
	query := `SELECT pg_advisory_xact_lock(hashtext('bank_accounts:' || $1))`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM bank_accounts WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return n, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.BankAccount, error) {
	query := `
		SELECT id, user_id, account_number, account_name, account_type, balance, currency, created_at
		FROM bank_accounts
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	defer rows.Close()

	var out []*models.BankAccount
	for rows.Next() {
		a := &models.BankAccount{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.AccountNumber, &a.AccountName, &a.AccountType, &a.Balance, &a.Currency, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return out, nil
}
