package ratelimit

import (
	"context"
	"sync"
	"time"

	"parkease/internal/pkg/config"

	"golang.org/x/time/rate"
)

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps one token bucket per key in process memory. Idle
// buckets are dropped after the configured TTL.
type LocalLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*localEntry
	limit    rate.Limit
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

func NewLocalLimiter(cfg config.RateLimitConfig) *LocalLimiter {
	limit := rate.Inf
	if cfg.RefillInterval > 0 {
		limit = rate.Every(cfg.RefillInterval)
	}
	return &LocalLimiter{
		buckets:  make(map[string]*localEntry),
		limit:    limit,
		capacity: cfg.Capacity,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

func (l *LocalLimiter) Take(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	entry, ok := l.buckets[key]
	if !ok {
		entry = &localEntry{limiter: rate.NewLimiter(l.limit, l.capacity)}
		l.buckets[key] = entry
	}
	entry.lastSeen = now

	r := entry.limiter.ReserveN(now, 1)
	if !r.OK() {
		return Decision{Allowed: false}, nil
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}

	remaining := int(entry.limiter.TokensAt(now))
	return Decision{Allowed: true, Remaining: max(remaining, 0)}, nil
}

func (l *LocalLimiter) evict(now time.Time) {
	if l.ttl <= 0 {
		return
	}
	for k, e := range l.buckets {
		if now.Sub(e.lastSeen) > l.ttl {
			delete(l.buckets, k)
		}
	}
}
