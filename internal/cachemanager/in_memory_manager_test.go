package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type renderKey string

func newTestCache() *InMemoryCacheManager[renderKey, string] {
	return NewInMemoryCacheManager[renderKey, string]("render", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemoryCacheManager_SetThenGet(t *testing.T) {
	cache := newTestCache()
	cache.Set(context.Background(), "desc|header|80|dark", "rendered", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "desc|header|80|dark")
	require.True(t, ok)
	require.Equal(t, "rendered", got)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	got, ok := newTestCache().Get(context.Background(), "missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_WrongTypeIsMiss(t *testing.T) {
	cache := newTestCache()
	cache.cache.Set("k", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "k")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := newTestCache()

	_, ok := cache.GetWithRefresh(context.Background(), "k", time.Hour)
	require.False(t, ok)

	cache.Set(context.Background(), "k", "v", time.Millisecond*50)
	got, ok := cache.GetWithRefresh(context.Background(), "k", time.Hour)
	require.True(t, ok)
	require.Equal(t, "v", got)

	_, expiry, found := cache.cache.GetWithExpiration("k")
	require.True(t, found)
	require.True(t, time.Until(expiry) > time.Minute, "ttl should have been extended")
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()
	cache.Set(ctx, "a", "1", DefaultExpiration)
	cache.Set(ctx, "b", "2", DefaultExpiration)
	cache.Set(ctx, "c", "3", DefaultExpiration)

	require.NoError(t, cache.Delete(ctx))
	require.Equal(t, 3, cache.Len())

	require.NoError(t, cache.Delete(ctx, "a"))
	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)

	require.NoError(t, cache.Flush(ctx))
	require.Equal(t, 0, cache.Len())
}
