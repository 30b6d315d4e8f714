// Package loginattempts is the append-only ledger of login outcomes.
package loginattempts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.LoginAttempt) error
	// ListByUser returns the newest attempts of a user first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.LoginAttempt, error)
	// ListBetween returns attempts with from <= created_at < to, oldest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]*models.LoginAttempt, error)
}
