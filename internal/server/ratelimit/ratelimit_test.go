package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client, "pegasus:resend:", limit, window, logging.Discard()), mr
}

func TestAllow_BlocksAfterLimitWithinWindow(t *testing.T) {
	l, mr := newLimiter(t, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, int64(3), d.Count)
	assert.True(t, d.RetryAfter > 0 && d.RetryAfter <= time.Minute)

	other, err := l.Allow(ctx, "b@x.com")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are independent")

	mr.FastForward(time.Minute + time.Second)

	d, err = l.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "window expired")
	assert.Equal(t, int64(1), d.Count)
}

func TestAllow_ZeroLimitDisables(t *testing.T) {
	l, _ := newLimiter(t, 0, time.Minute)
	for i := 0; i < 5; i++ {
		d, err := l.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
}

func TestAllow_FailsOpen(t *testing.T) {
	l, mr := newLimiter(t, 1, time.Minute)
	mr.Close()

	d, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.True(t, d.Allowed)
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	_ = c.Close()

	addr := mr.Addr()
	mr.Close()
	_, err = NewClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
