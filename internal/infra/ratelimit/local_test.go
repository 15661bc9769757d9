//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"parkease/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	newLimiter := func() *LocalLimiter {
		l := NewLocalLimiter(config.RateLimitConfig{Capacity: 2, RefillInterval: time.Second, TTL: time.Minute})
		l.now = func() time.Time { return now }
		return l
	}

	t.Run("burst up to capacity then blocks", func(t *testing.T) {
		l := newLimiter()
		ctx := context.Background()

		for range 2 {
			d, err := l.Take(ctx, "user-a")
			require.NoError(t, err)
			assert.True(t, d.Allowed)
		}

		d, err := l.Take(ctx, "user-a")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Greater(t, d.RetryAfter, time.Duration(0))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := newLimiter()
		ctx := context.Background()
		for range 2 {
			_, _ = l.Take(ctx, "user-a")
		}

		d, err := l.Take(ctx, "user-b")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("idle buckets are evicted", func(t *testing.T) {
		l := newLimiter()
		_, _ = l.Take(context.Background(), "user-a")
		require.Len(t, l.buckets, 1)

		now = now.Add(2 * time.Minute)
		_, _ = l.Take(context.Background(), "user-b")
		assert.Len(t, l.buckets, 1)
		assert.Contains(t, l.buckets, "user-b")
	})
}
