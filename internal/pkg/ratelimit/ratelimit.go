package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("rate limited")

const (
	VISITOR_IDLE_TIMEOUT = 3 * time.Minute
	SWEEP_INTERVAL       = time.Minute
)

type LimiterRedis struct {
	limiter *redis_rate.Limiter
	client  redis.UniversalClient
}

func NewLimiterRedis(client redis.UniversalClient) *LimiterRedis {
	return &LimiterRedis{redis_rate.NewLimiter(client), client}
}

func (l *LimiterRedis) Allow(ctx context.Context, key string, limit redis_rate.Limit) error {
	res, err := l.limiter.Allow(ctx, key, limit)
	if err != nil {
		return err
	}
	if res.Allowed == 0 {
		return ErrRateLimited
	}
	return nil
}

func (l *LimiterRedis) Shutdown() error {
	return l.client.Close()
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LimiterMemory keeps one token bucket per key in process memory. Buckets
// idle for longer than VISITOR_IDLE_TIMEOUT are dropped.
type LimiterMemory struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

func NewLimiterMemory() *LimiterMemory {
	return &LimiterMemory{
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (l *LimiterMemory) Allow(_ context.Context, key string, limit redis_rate.Limit) error {
	if limit.IsZero() || limit.Rate <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > SWEEP_INTERVAL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > VISITOR_IDLE_TIMEOUT {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		every := limit.Period / time.Duration(limit.Rate)
		v = &visitor{limiter: rate.NewLimiter(rate.Every(every), limit.Burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if !v.limiter.AllowN(now, 1) {
		return ErrRateLimited
	}
	return nil
}
