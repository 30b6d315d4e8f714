// Package verificationtokens stores single-use email verification and
// password reset tokens.
package verificationtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type Repository interface {
	// Upsert stores t, replacing any earlier token the same user holds for
	// the same purpose.
	Upsert(ctx context.Context, t *models.VerificationToken) error
	// Find returns the token regardless of expiry or use.
	Find(ctx context.Context, token string) (*models.VerificationToken, error)
	// FindValid returns the token only if it has the given purpose, is
	// unused and has not expired at now.
	FindValid(ctx context.Context, token, purpose string, now time.Time) (*models.VerificationToken, error)
	// MarkUsed consumes the token if it is still valid at now and reports
	// whether this call was the one that consumed it.
	MarkUsed(ctx context.Context, token, purpose string, now time.Time) (bool, error)
	// DeleteExpired removes tokens that expired before now. An empty purpose
	// matches every purpose.
	DeleteExpired(ctx context.Context, purpose string, now time.Time) (int64, error)
}
