package caching

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

const (
	LOCAL_CACHE_SIZE = 10000
	LOCAL_CACHE_TTL  = time.Minute
)

type ReadOnlyCache interface {
	Get(ctx context.Context, key string, target any) error
}

type Cache interface {
	ReadOnlyCache
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// UseCache returns the cached value under key, or stores the result of
// callback. A cache backend failure is logged and treated as a miss so that
// reads keep working when Redis is unavailable.
func UseCache[T any](ctx context.Context, cash Cache, key string, ttl time.Duration, callback func() (T, error)) (T, error) {
	var v T
	if cash == nil {
		return callback()
	}

	err := cash.Get(ctx, key, &v)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Println("cache get", key, err)
	}

	v, err = callback()
	if err != nil {
		return v, err
	}

	// fire and forget
	//nolint:errcheck
	cash.Set(ctx, key, v, ttl)
	return v, nil
}

type CacheRedis struct {
	instance *cache.Cache
	client   redis.UniversalClient
}

func (c *CacheRedis) Get(ctx context.Context, key string, target any) error {
	return c.instance.Get(ctx, key, target)
}

func (c *CacheRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.instance.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   ttl,
	})
}

func (c *CacheRedis) Delete(ctx context.Context, key string) error {
	err := c.instance.Delete(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil
	}
	return err
}

// Shutdown closes the Redis connection, if any.
func (c *CacheRedis) Shutdown() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func NewCacheRedis(client redis.UniversalClient, withLocalCache bool) (*CacheRedis, error) {
	var localCache cache.LocalCache
	if withLocalCache {
		localCache = cache.NewTinyLFU(LOCAL_CACHE_SIZE, LOCAL_CACHE_TTL)
	}
	return &CacheRedis{cache.New(&cache.Options{
		Redis:      client,
		LocalCache: localCache,
	}), client}, nil
}

// NewCacheLocal builds an in-process cache for setups without Redis.
// Entries live at most ttl regardless of the TTL passed to Set.
func NewCacheLocal(ttl time.Duration) *CacheRedis {
	return &CacheRedis{cache.New(&cache.Options{
		LocalCache: cache.NewTinyLFU(LOCAL_CACHE_SIZE, ttl),
	}), nil}
}
