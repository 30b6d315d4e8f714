// Package bankaccounts stores the bank accounts provisioned for users.
package bankaccounts

import (
	"context"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type Repository interface {
	// Create inserts a. A duplicate account number yields common.ErrorConflict.
	Create(ctx context.Context, a *models.BankAccount) (*models.BankAccount, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	// LockUser serializes account creation for userID until the surrounding
	// transaction ends. Outside a transaction it holds nothing.
	LockUser(ctx context.Context, userID string) error
	CountByUser(ctx context.Context, userID string) (int, error)
	ListByUser(ctx context.Context, userID string) ([]*models.BankAccount, error)
}
