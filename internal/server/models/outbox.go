package models

import (
	"encoding/json"
	"time"
)

const (
	OutboxPending    = "pending"
	OutboxProcessing = "processing"
	OutboxPublished  = "published"
)

type OutboxMessage struct {
	ID                  int64
	Exchange            string
	RoutingKey          string
	Payload             json.RawMessage
	Status              string
	Attempts            int
	NextAttemptAt       time.Time
	ProcessingStartedAt *time.Time
	PublishedAt         *time.Time
	LastError           string
	CreatedAt           time.Time
}
