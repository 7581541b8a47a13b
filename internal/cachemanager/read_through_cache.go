package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache computes values on a miss and stores them. Errors from the
// compute function are returned and never cached.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache CacheManager[K, V]
	key   func(input I) K
	fn    func(ctx context.Context, input I) (V, error)
	ttl   time.Duration
}

// NewReadThroughCache wires a cache to a key derivation and compute function.
func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	key func(input I) K,
	fn func(ctx context.Context, input I) (V, error),
	ttl time.Duration,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache: cache,
		key:   key,
		fn:    fn,
		ttl:   ttl,
	}
}

// Get returns the cached value for input or computes and stores it.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, input I) (V, error) {
	k := r.key(input)
	if value, ok := r.cache.GetWithRefresh(ctx, k, r.ttl); ok {
		return value, nil
	}

	value, err := r.fn(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, k, value, r.ttl)
	return value, nil
}
