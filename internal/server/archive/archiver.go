// Package archive exports the login attempt ledger to object storage.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/google/uuid"
)

// LedgerArchiver copies login attempts to S3 as JSON lines. It only reads
// the ledger; nothing is deleted after upload.
type LedgerArchiver struct {
	repomanager repomanager.RepositoryManager
	uploader    Uploader
	bucket      string
	clock       timex.Clock
	logger      logging.Logger
}

func NewLedgerArchiver(m repomanager.RepositoryManager, u Uploader, bucket string, clock timex.Clock, logger logging.Logger) *LedgerArchiver {
	return &LedgerArchiver{
		repomanager: m,
		uploader:    u,
		bucket:      bucket,
		clock:       clock,
		logger:      logger.With("module", "archive"),
	}
}

// ObjectKey names the archive object for a window starting at day.
func ObjectKey(day time.Time) string {
	d := day.UTC()
	return fmt.Sprintf("login-attempts/%04d/%02d/%02d/%s.jsonl", d.Year(), d.Month(), d.Day(), uuid.NewString())
}

// Archive uploads the attempts created in [from, to). An empty window
// uploads nothing and returns an empty key.
func (a *LedgerArchiver) Archive(ctx context.Context, from, to time.Time) (string, int, error) {
	attempts, err := a.repomanager.LoginAttempts(a.repomanager.Conn()).ListBetween(ctx, from, to)
	if err != nil {
		return "", 0, fmt.Errorf("error listing login attempts: %w", err)
	}
	if len(attempts) == 0 {
		return "", 0, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, at := range attempts {
		if err := enc.Encode(at); err != nil {
			return "", 0, err
		}
	}

	key := ObjectKey(from)
	_, err = a.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		return "", 0, fmt.Errorf("error uploading archive: %w", err)
	}

	a.logger.Info(ctx, "login attempts archived", "key", key, "count", len(attempts))
	return key, len(attempts), nil
}

// ArchivePreviousDay archives yesterday (UTC) relative to the clock.
func (a *LedgerArchiver) ArchivePreviousDay(ctx context.Context) (string, int, error) {
	now := a.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return a.Archive(ctx, today.AddDate(0, 0, -1), today)
}
