package caching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseCacheStoresResult(t *testing.T) {
	ctx := context.Background()
	c := NewCacheLocal(time.Minute)

	calls := 0
	load := func() ([]byte, error) {
		calls++
		return []byte(`[{"id":"c1"}]`), nil
	}

	v, err := UseCache(ctx, c, "/api/challenges", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c1"}]`, string(v))

	v, err = UseCache(ctx, c, "/api/challenges", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c1"}]`, string(v))
	assert.Equal(t, 1, calls)

	var cached []byte
	require.NoError(t, c.Get(ctx, "/api/challenges", &cached))
	assert.Equal(t, `[{"id":"c1"}]`, string(cached))
}

func TestUseCacheSkipsErrors(t *testing.T) {
	ctx := context.Background()
	c := NewCacheLocal(time.Minute)

	_, err := UseCache(ctx, c, "/api/milestones", time.Minute, func() ([]byte, error) {
		return nil, errors.New("upstream down")
	})
	assert.Error(t, err)

	var cached []byte
	assert.ErrorIs(t, c.Get(ctx, "/api/milestones", &cached), cache.ErrCacheMiss)
}

func TestUseCacheWithoutCache(t *testing.T) {
	calls := 0
	for i := 0; i < 2; i++ {
		v, err := UseCache(context.Background(), nil, "k", time.Minute, func() (int, error) {
			calls++
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	}
	assert.Equal(t, 2, calls)
}

func TestDeleteMissingKey(t *testing.T) {
	c := NewCacheLocal(time.Minute)
	assert.NoError(t, c.Delete(context.Background(), "/api/free-spins"))
	assert.NoError(t, c.Shutdown())
}

func TestDeleteDropsEntry(t *testing.T) {
	ctx := context.Background()
	c := NewCacheLocal(time.Minute)

	require.NoError(t, c.Set(ctx, "/api/challenges", []byte("[]"), time.Minute))
	require.NoError(t, c.Delete(ctx, "/api/challenges"))

	var cached []byte
	assert.ErrorIs(t, c.Get(ctx, "/api/challenges", &cached), cache.ErrCacheMiss)
}
