package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/assert"
)

func TestLimiterMemory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiterMemory()
	l.now = func() time.Time { return now }

	limit := redis_rate.PerMinute(2)
	assert.NoError(t, l.Allow(ctx, "1.2.3.4", limit))
	assert.NoError(t, l.Allow(ctx, "1.2.3.4", limit))
	assert.ErrorIs(t, l.Allow(ctx, "1.2.3.4", limit), ErrRateLimited)

	// other clients have their own bucket
	assert.NoError(t, l.Allow(ctx, "5.6.7.8", limit))

	now = now.Add(31 * time.Second)
	assert.NoError(t, l.Allow(ctx, "1.2.3.4", limit))
	assert.ErrorIs(t, l.Allow(ctx, "1.2.3.4", limit), ErrRateLimited)
}

func TestLimiterMemoryZeroLimit(t *testing.T) {
	l := NewLimiterMemory()
	for i := 0; i < 10; i++ {
		assert.NoError(t, l.Allow(context.Background(), "k", redis_rate.Limit{}))
	}
}

func TestLimiterMemorySweepsIdleVisitors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiterMemory()
	l.now = func() time.Time { return now }

	assert.NoError(t, l.Allow(ctx, "idle", redis_rate.PerMinute(1)))
	now = now.Add(VISITOR_IDLE_TIMEOUT + SWEEP_INTERVAL + time.Second)
	assert.NoError(t, l.Allow(ctx, "fresh", redis_rate.PerMinute(1)))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "idle")
	assert.Contains(t, l.visitors, "fresh")
}
