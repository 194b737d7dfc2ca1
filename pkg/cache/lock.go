package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
)

const lockKeyPrefix = "porcelarte:lock:"

// Locker hands out short Redis leases so a periodic job runs on one worker
// instance per window.
type Locker struct {
	client *redislock.Client
}

// NewLocker returns a Locker sharing r's connection pool.
func NewLocker(r *RedisClient) *Locker {
	return &Locker{client: redislock.New(r.Client())}
}

// Claim takes the named lease for ttl. It reports false, without error, when
// another instance already holds it. The lease is never released early: it
// expires on its own, which is what spaces runs ttl apart.
func (l *Locker) Claim(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	_, err := l.client.Obtain(ctx, LockKey(name), ttl, nil)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redislock.ErrNotObtained):
		return false, nil
	default:
		return false, fmt.Errorf("claim lock %s: %w", name, err)
	}
}

// LockKey builds the Redis key of a named lease.
func LockKey(name string) string {
	return lockKeyPrefix + name
}
