package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange   string
	routingKey string
	body       []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	err  error
	sent []published
}

func (f *fakePublisher) Publish(_ context.Context, exchange, routingKey string, body any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	f.sent = append(f.sent, published{exchange, routingKey, b})
	return nil
}

func (f *fakePublisher) Close() {}

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Dispatcher, *repomanager.InMemoryRepositoryManager, *fakePublisher, *timex.ManualClock) {
	t.Helper()
	clock := timex.NewManualClock(t0)
	rm := repomanager.NewInMemoryRepositoryManager(clock)
	pub := &fakePublisher{}
	return NewDispatcher(rm, pub, clock, logging.Discard(), 10, time.Second), rm, pub, clock
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, time.Second, retryDelay(0))
	assert.Equal(t, 2*time.Second, retryDelay(1))
	assert.Equal(t, 8*time.Second, retryDelay(3))
	assert.Equal(t, 256*time.Second, retryDelay(8))
	assert.Equal(t, 256*time.Second, retryDelay(20))
}

func TestFlushOnce_PublishesPayloadVerbatim(t *testing.T) {
	d, rm, pub, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, rm.Outbox(nil).Enqueue(ctx, "pegasus.events", "user.registered", models.UserRegisteredEvent{UserID: "u1", Email: "a@x.com"}))

	n, err := d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, pub.sent, 1)
	assert.Equal(t, "pegasus.events", pub.sent[0].exchange)
	assert.Equal(t, "user.registered", pub.sent[0].routingKey)
	var ev models.UserRegisteredEvent
	require.NoError(t, json.Unmarshal(pub.sent[0].body, &ev))
	assert.Equal(t, "u1", ev.UserID)

	msgs := rm.Store.Outbox().Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.OutboxPublished, msgs[0].Status)

	n, err = d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "published messages are not sent twice")
}

func TestFlushOnce_BacksOffOnFailure(t *testing.T) {
	d, rm, pub, clock := setup(t)
	ctx := context.Background()
	require.NoError(t, rm.Outbox(nil).Enqueue(ctx, "ex", "rk", map[string]string{"k": "v"}))

	pub.err = errors.New("broker down")
	n, err := d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	msg := rm.Store.Outbox().Messages()[0]
	assert.Equal(t, models.OutboxPending, msg.Status)
	assert.Equal(t, 1, msg.Attempts)
	assert.Equal(t, "broker down", msg.LastError)
	assert.Equal(t, t0.Add(2*time.Second), msg.NextAttemptAt)

	pub.err = nil
	n, err = d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "not due yet")

	clock.Advance(2 * time.Second)
	n, err = d.FlushOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, rm.Store.Outbox().Messages()[0].Attempts)
}

func TestRun_StopsOnCancel(t *testing.T) {
	clock := timex.NewManualClock(t0)
	rm := repomanager.NewInMemoryRepositoryManager(clock)
	pub := &fakePublisher{}
	d := NewDispatcher(rm, pub, clock, logging.Discard(), 0, 10*time.Millisecond)
	require.NoError(t, rm.Outbox(nil).Enqueue(context.Background(), "ex", "rk", "x"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.sent) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
