// Package ratelimit throttles repeated actions per key with a fixed window
// counter kept in Redis.
package ratelimit

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more action under key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type Decision struct {
	Allowed bool
	Count   int64
	// RetryAfter is the time left in the current window.
	RetryAfter time.Duration
}

// incrWindow bumps the counter and starts the window on the first hit.
// Returns {count, pttl}.
var incrWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {count, ttl}
`)

type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
	logger logging.Logger
}

// NewRedisLimiter allows limit actions per key within window.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration, logger logging.Logger) *RedisLimiter {
	if window <= 0 {
		window = time.Hour
	}
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
		logger: logger.With("module", "ratelimit"),
	}
}

// Allow fails open: a Redis error allows the action and is returned for
// the caller to log.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.limit <= 0 {
		return Decision{Allowed: true}, nil
	}

	res, err := incrWindow.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		l.logger.Warn(ctx, "rate limiter unavailable, allowing", "error", err)
		return Decision{Allowed: true}, err
	}

	count, ttl := res[0], time.Duration(res[1])*time.Millisecond
	if ttl <= 0 {
		ttl = l.window
	}
	return Decision{
		Allowed:    count <= l.limit,
		Count:      count,
		RetryAfter: ttl,
	}, nil
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
