package ratelimit

import (
	"context"
	"time"

	"parkease/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of taking one token from a bucket.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Take(ctx context.Context, key string) (Decision, error)
}

// New picks the shared Redis bucket when a client is available so that all
// replicas count against the same budget.
func New(cfg config.RateLimitConfig, rdb *redis.Client) Limiter {
	if rdb != nil {
		return NewRedisLimiter(rdb, cfg)
	}
	return NewLocalLimiter(cfg)
}
