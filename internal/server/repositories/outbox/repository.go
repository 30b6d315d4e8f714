// Package outbox persists events that must be published to the broker
// once the surrounding transaction commits.
package outbox

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type Repository interface {
	// Enqueue stores payload as JSON for later publication.
	Enqueue(ctx context.Context, exchange, routingKey string, payload any) error
	// Claim moves up to limit due messages into processing and returns them.
	// Messages stuck in processing for longer than staleAfter are reclaimed.
	Claim(ctx context.Context, limit int, now time.Time, staleAfter time.Duration) ([]models.OutboxMessage, error)
	MarkPublished(ctx context.Context, id int64, now time.Time) error
	// MarkFailed puts the message back to pending until retryAt.
	MarkFailed(ctx context.Context, id int64, retryAt time.Time, reason string) error
}

// MaxErrorLength bounds the stored last_error text.
const MaxErrorLength = 2000

func truncateReason(reason string) string {
	if len(reason) > MaxErrorLength {
		return reason[:MaxErrorLength]
	}
	return reason
}
