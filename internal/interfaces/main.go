package interfaces

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
)

type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) error
}

// Locker hands out short-lived exclusive locks. The returned release func
// must be called once the guarded work is done.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), err error)
}
