package ratelimiter_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/pkg/ratelimiter"
)

func TestNewBucket(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()

	_, err := ratelimiter.NewBucket(nil, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clk := clock.NewMock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreClock(clk))
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       2,
		RefillRate:     1,
		RefillInterval: time.Second,
	})
	require.NoError(t, err)

	res, err := limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 2, res.Limit)
	assert.Equal(t, 1, res.Remaining)
	assert.Zero(t, res.RetryAfter())

	_, err = limiter.Allow(ctx, "user:1")
	require.NoError(t, err)

	res, err = limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter())

	res, err = limiter.Allow(ctx, "user:2")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	clk.Add(time.Second)
	res, err = limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	_, err = limiter.AllowN(ctx, "user:1", 3)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	_, err = limiter.AllowN(ctx, "user:1", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	require.NoError(t, limiter.Reset(ctx, "user:1"))
	res, err = limiter.AllowN(ctx, "user:1", 2)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestBucket_Concurrent(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       50,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)

	var (
		mu      sync.Mutex
		allowed int
		wg      sync.WaitGroup
	)
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(context.Background(), "shared")
			if err != nil || !res.Allowed() {
				return
			}
			mu.Lock()
			allowed++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestRelease(t *testing.T) {
	t.Parallel()

	type click struct {
		User string
		N    int
	}

	clk := clock.NewMock()
	var buf bytes.Buffer
	limiter, err := ratelimiter.NewBucket(
		ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreClock(clk)),
		ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second},
		ratelimiter.WithBucketLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	require.NoError(t, err)

	clicks := emitter.New[click]()
	throttled := emitter.Wait(clicks, ratelimiter.Release(limiter, func(c click) string { return c.User }))

	var got []int
	throttled.SubscribeFunc(func(c click) { got = append(got, c.N) })

	clicks.EmitAll(click{"a", 1}, click{"a", 2}, click{"a", 3}, click{"b", 4})
	assert.Equal(t, []int{1, 2, 4}, got)
	assert.Contains(t, buf.String(), "value throttled")

	clk.Add(time.Second)
	clicks.Emit(click{"a", 5})
	assert.Equal(t, []int{1, 2, 4, 5}, got)
}
