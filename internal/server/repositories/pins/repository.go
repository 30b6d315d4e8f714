// Package pins stores hashed transaction PINs and their brute-force counters.
package pins

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type Repository interface {
	// Upsert replaces the PIN of p.AccountID in one statement and clears
	// the failure counters.
	Upsert(ctx context.Context, p *models.Pin) error
	Get(ctx context.Context, accountID string) (*models.Pin, error)
	// RecordFailure atomically bumps the failure counter and locks the PIN
	// once it reaches maxAttempts. An expired lock restarts the count at 1.
	// It returns common.ErrAccountLocked when a concurrent failure already
	// holds an active lock (last failure after lockedSince).
	RecordFailure(ctx context.Context, accountID string, now time.Time, maxAttempts int, lockedSince time.Time) (*models.Pin, error)
	// ResetFailures zeroes the counters after a successful verification
	// unless a lock newer than lockedSince is in place. It reports whether
	// the row was reset.
	ResetFailures(ctx context.Context, accountID string, lockedSince time.Time) (bool, error)
}
