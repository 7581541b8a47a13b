package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type renderInput struct {
	ID    string
	Width int
}

func TestReadThroughCache_ComputesOnceThenHits(t *testing.T) {
	calls := 0
	rt := NewReadThroughCache[renderKey, string, renderInput](
		newTestCache(),
		func(in renderInput) renderKey { return renderKey(in.ID) },
		func(_ context.Context, in renderInput) (string, error) {
			calls++
			return "rendered:" + in.ID, nil
		},
		time.Minute,
	)

	for range 3 {
		got, err := rt.Get(context.Background(), renderInput{ID: "a", Width: 80})
		require.NoError(t, err)
		require.Equal(t, "rendered:a", got)
	}
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	cache := newTestCache()
	fail := true
	rt := NewReadThroughCache[renderKey, string, renderInput](
		cache,
		func(in renderInput) renderKey { return renderKey(in.ID) },
		func(_ context.Context, in renderInput) (string, error) {
			if fail {
				return "", errors.New("boom")
			}
			return "ok", nil
		},
		time.Minute,
	)

	_, err := rt.Get(context.Background(), renderInput{ID: "a"})
	require.Error(t, err)
	require.Equal(t, 0, cache.Len())

	fail = false
	got, err := rt.Get(context.Background(), renderInput{ID: "a"})
	require.NoError(t, err)
	require.Equal(t, "ok", got)
}
