package outbox

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestEnqueue_MarshalsPayload(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+outbox_messages\s*\(exchange,\s*routing_key,\s*payload\)`).
		WithArgs("user_events", "user.registered", `{"user_id":"u1"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Enqueue(context.Background(), " user_events ", "user.registered", map[string]string{"user_id": "u1"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueue_UnmarshalablePayload(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	err := repo.Enqueue(context.Background(), "x", "y", make(chan int))
	assert.ErrorContains(t, err, "marshal outbox payload")
}

func TestClaim_ReturnsProcessingMessages(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)WITH\s+candidates\s+AS.*FOR\s+UPDATE\s+SKIP\s+LOCKED.*RETURNING\s+o\.id`).
		WithArgs(10, now, now.Add(-2*time.Minute)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "exchange", "routing_key", "payload", "attempts"}).
			AddRow(int64(7), "user_events", "user.registered", `{"user_id":"u1"}`, 1))

	msgs, err := repo.Claim(context.Background(), 10, now, 2*time.Minute)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, int64(7), msgs[0].ID)
	assert.JSONEq(t, `{"user_id":"u1"}`, string(msgs[0].Payload))
	assert.Equal(t, 1, msgs[0].Attempts)
}

func TestMarkPublished(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`(?s)UPDATE\s+outbox_messages\s+SET\s+status\s*=\s*'published'`).
		WithArgs(int64(7), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkPublished(context.Background(), 7, now))
}

func TestMarkFailed_TruncatesReason(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	retryAt := time.Now().Add(4 * time.Second)
	long := strings.Repeat("e", MaxErrorLength+10)
	mock.ExpectExec(`(?s)UPDATE\s+outbox_messages\s+SET\s+status\s*=\s*'pending'`).
		WithArgs(int64(7), retryAt, long[:MaxErrorLength]).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), 7, retryAt, long))
}

func TestMarkFailed_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE\s+outbox_messages`).WillReturnError(errors.New("db err"))

	err := repo.MarkFailed(context.Background(), 7, time.Now(), "boom")
	assert.ErrorContains(t, err, "db error: db err")
}
