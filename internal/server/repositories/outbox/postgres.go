package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/common"
	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Enqueue(ctx context.Context, exchange, routingKey string, payload any) error {
	blob, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}

	query := `
		INSERT INTO outbox_messages (exchange, routing_key, payload)
		VALUES ($1, $2, $3::jsonb)
	`
	if _, err := r.db.ExecContext(ctx, query, strings.TrimSpace(exchange), strings.TrimSpace(routingKey), string(blob)); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}

func (r *PostgresRepository) Claim(ctx context.Context, limit int, now time.Time, staleAfter time.Duration) ([]models.OutboxMessage, error) {
	query := `
		WITH candidates AS (
			SELECT id
			FROM outbox_messages
			WHERE (status = 'pending' AND next_attempt_at <= $2)
			   OR (status = 'processing' AND processing_started_at < $3)
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE outbox_messages AS o
		SET status = 'processing',
		    processing_started_at = $2,
		    attempts = o.attempts + 1
		FROM candidates
		WHERE o.id = candidates.id
		RETURNING o.id, o.exchange, o.routing_key, o.payload::text, o.attempts
	`
	rows, err := r.db.QueryContext(ctx, query, limit, now, now.Add(-staleAfter))
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	defer rows.Close()

	messages := make([]models.OutboxMessage, 0, limit)
	for rows.Next() {
		var (
			msg         models.OutboxMessage
			payloadText string
		)
		if err := rows.Scan(&msg.ID, &msg.Exchange, &msg.RoutingKey, &payloadText, &msg.Attempts); err != nil {
			return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
		}
		msg.Payload = json.RawMessage(payloadText)
		msg.Status = models.OutboxProcessing
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return messages, nil
}

func (r *PostgresRepository) MarkPublished(ctx context.Context, id int64, now time.Time) error {
	query := `
		UPDATE outbox_messages
		SET status = 'published',
		    published_at = $2,
		    processing_started_at = NULL,
		    last_error = NULL
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, now); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, id int64, retryAt time.Time, reason string) error {
	query := `
		UPDATE outbox_messages
		SET status = 'pending',
		    next_attempt_at = $2,
		    processing_started_at = NULL,
		    last_error = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, retryAt, truncateReason(reason)); err != nil {
		return fmt.Errorf("db error: %w: %w", err, common.ErrTransientDependency)
	}
	return nil
}
