// Package refreshtokens declares the server-side repository contract for
// persisted refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID that stops being accepted
	// at expiresAt.
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) (*models.RefreshToken, error)

	// Find looks up a refresh token by value together with its owner.
	// Implementations return common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by value. Deleting a non-existent
	// token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteByID removes one record and reports whether it existed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// DeleteExpired removes every token whose expiry is before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
