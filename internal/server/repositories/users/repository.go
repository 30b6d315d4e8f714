// Package users declares the account storage contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills its ID and timestamps. A duplicate email
	// yields common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	MarkVerified(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
