// Package ratelimit limits how often a single key, usually a client IP, may
// hit a route within a time window.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

const defaultPrefix = "ratelimit"

// incrWindow increments the counter and starts its window in one atomic step.
// A counter found without a TTL gets one too, so a key can never outlive its window.
var incrWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) == -1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RedisLimiter is a fixed window counter shared by every instance that uses
// the same Redis database.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: defaultPrefix,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	const op = "adapter.ratelimit.RedisLimiter.Allow"

	count, err := incrWindow.Run(ctx, l.client, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("%s: failed to increment counter: %w", op, err)
	}

	return count <= l.limit, nil
}

// MemoryLimiter keeps one token bucket per key in process memory. It is used
// when no Redis instance is configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	maxKeys  int
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit < 1 {
		limit = 1
	}

	return &MemoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		maxKeys:  10000,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= l.maxKeys {
			l.limiters = make(map[string]*rate.Limiter)
		}

		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}

	return limiter.Allow(), nil
}
