package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type OutboxRepository struct {
	s *Store
}

func (s *Store) Outbox() *OutboxRepository {
	return &OutboxRepository{s: s}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, exchange, routingKey string, payload any) error {
	blob, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}

	defer r.s.lock(ctx)()

	now := r.s.now()
	r.s.data.nextOutboxID++
	id := r.s.data.nextOutboxID
	r.s.data.outbox[id] = models.OutboxMessage{
		ID:            id,
		Exchange:      strings.TrimSpace(exchange),
		RoutingKey:    strings.TrimSpace(routingKey),
		Payload:       blob,
		Status:        models.OutboxPending,
		NextAttemptAt: now,
		CreatedAt:     now,
	}
	return nil
}

func (r *OutboxRepository) Claim(ctx context.Context, limit int, now time.Time, staleAfter time.Duration) ([]models.OutboxMessage, error) {
	defer r.s.lock(ctx)()

	staleBefore := now.Add(-staleAfter)
	var due []models.OutboxMessage
	for _, m := range r.s.data.outbox {
		pending := m.Status == models.OutboxPending && !m.NextAttemptAt.After(now)
		stale := m.Status == models.OutboxProcessing && m.ProcessingStartedAt != nil && m.ProcessingStartedAt.Before(staleBefore)
		if pending || stale {
			due = append(due, m)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	for i := range due {
		started := now
		due[i].Status = models.OutboxProcessing
		due[i].ProcessingStartedAt = &started
		due[i].Attempts++
		r.s.data.outbox[due[i].ID] = due[i]
	}
	return due, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id int64, now time.Time) error {
	defer r.s.lock(ctx)()

	m, ok := r.s.data.outbox[id]
	if !ok {
		return nil
	}
	m.Status = models.OutboxPublished
	m.PublishedAt = &now
	m.ProcessingStartedAt = nil
	m.LastError = ""
	r.s.data.outbox[id] = m
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id int64, retryAt time.Time, reason string) error {
	defer r.s.lock(ctx)()

	m, ok := r.s.data.outbox[id]
	if !ok {
		return nil
	}
	m.Status = models.OutboxPending
	m.NextAttemptAt = retryAt
	m.ProcessingStartedAt = nil
	m.LastError = reason
	r.s.data.outbox[id] = m
	return nil
}

// Messages returns a copy of every stored outbox message ordered by ID.
func (r *OutboxRepository) Messages() []models.OutboxMessage {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.OutboxMessage, 0, len(r.s.data.outbox))
	for _, m := range r.s.data.outbox {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
