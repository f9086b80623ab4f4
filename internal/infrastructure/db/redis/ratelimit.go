package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginWindow      = time.Minute
	loginMaxAttempts = 10
)

// LoginLimiter is a fixed-window counter backed by Redis, keyed per
// caller. Key format: ratelimit:login:<key>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// Allow increments the caller's counter and reports whether the attempt
// is within the window limit. The first attempt in a window sets the
// expiry; the window is not sliding.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, loginWindow).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= loginMaxAttempts, nil
}

func (l *LoginLimiter) key(key string) string {
	return fmt.Sprintf("ratelimit:login:%s", key)
}
