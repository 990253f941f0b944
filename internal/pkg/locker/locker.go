package locker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const DEFAULT_EXPIRY = 30 * time.Second

var ErrLocked = errors.New("locked")

type LockerRedis struct {
	rs     *redsync.Redsync
	client redis.UniversalClient
	expiry time.Duration
}

func NewLockerRedis(client redis.UniversalClient, expiry time.Duration) *LockerRedis {
	if expiry <= 0 {
		expiry = DEFAULT_EXPIRY
	}
	pool := goredis.NewPool(client)
	return &LockerRedis{redsync.New(pool), client, expiry}
}

func (l *LockerRedis) TryLock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(key, redsync.WithExpiry(l.expiry), redsync.WithTries(1))
	if err := mutex.TryLockContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLocked, key, err)
	}

	return func() {
		if _, err := mutex.Unlock(); err != nil {
			log.Println("unlock", key, err)
		}
	}, nil
}

func (l *LockerRedis) Shutdown() error {
	return l.client.Close()
}

// LockerLocal guards keys within a single process.
type LockerLocal struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLockerLocal() *LockerLocal {
	return &LockerLocal{held: make(map[string]struct{})}
}

func (l *LockerLocal) TryLock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, key)
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, nil
}
