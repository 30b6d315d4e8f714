// Package outbox relays committed outbox rows to the message broker.
package outbox

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/messaging"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

const (
	defaultBatchSize       = 50
	defaultPollInterval    = 1200 * time.Millisecond
	defaultStaleProcessing = 2 * time.Minute
	maxRetryDelay          = 300 * time.Second
)

// Dispatcher publishes pending outbox messages. Delivery is at least once:
// a message whose publish succeeded but whose status update failed is sent
// again after it goes stale.
type Dispatcher struct {
	repomanager     repomanager.RepositoryManager
	publisher       messaging.Publisher
	clock           timex.Clock
	logger          logging.Logger
	batchSize       int
	pollInterval    time.Duration
	staleProcessing time.Duration
}

func NewDispatcher(m repomanager.RepositoryManager, p messaging.Publisher, clock timex.Clock, logger logging.Logger, batchSize int, pollInterval time.Duration) *Dispatcher {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Dispatcher{
		repomanager:     m,
		publisher:       p,
		clock:           clock,
		logger:          logger.With("module", "outbox"),
		batchSize:       batchSize,
		pollInterval:    pollInterval,
		staleProcessing: defaultStaleProcessing,
	}
}

// Run flushes the outbox every poll interval until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.FlushOnce(ctx); err != nil {
				d.logger.Error(ctx, "outbox flush error", "error", err)
			}
		}
	}
}

// FlushOnce claims one batch and publishes it. It returns how many messages
// were published.
func (d *Dispatcher) FlushOnce(ctx context.Context) (int, error) {
	repo := d.repomanager.Outbox(d.repomanager.Conn())

	messages, err := repo.Claim(ctx, d.batchSize, d.clock.Now(), d.staleProcessing)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, m := range messages {
		if err := d.publish(ctx, m); err != nil {
			retryAt := d.clock.Now().Add(retryDelay(m.Attempts))
			if markErr := repo.MarkFailed(ctx, m.ID, retryAt, err.Error()); markErr != nil {
				d.logger.Error(ctx, "failed to mark outbox message as failed", "id", m.ID, "error", markErr)
			}
			d.logger.Warn(ctx, "outbox publish failed", "id", m.ID, "attempt", m.Attempts, "retry_at", retryAt, "error", err)
			continue
		}
		if err := repo.MarkPublished(ctx, m.ID, d.clock.Now()); err != nil {
			d.logger.Error(ctx, "failed to mark outbox message as published", "id", m.ID, "error", err)
			continue
		}
		published++
	}
	return published, nil
}

func (d *Dispatcher) publish(ctx context.Context, m models.OutboxMessage) error {
	return d.publisher.Publish(ctx, m.Exchange, m.RoutingKey, m.Payload)
}

// retryDelay doubles per attempt up to five minutes.
func retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		return time.Second
	}
	delay := time.Duration(1<<min(attempt, 8)) * time.Second
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}
