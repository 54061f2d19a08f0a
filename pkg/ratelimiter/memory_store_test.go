package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/pkg/ratelimiter"
)

func TestMemoryStore_ConsumeTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	config := ratelimiter.Config{
		Capacity:       10,
		RefillRate:     2,
		RefillInterval: 100 * time.Millisecond,
	}

	t.Run("creates new bucket with full capacity", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()

		remaining, resetAt, err := store.ConsumeTokens(ctx, "new-key", 3, config)
		require.NoError(t, err)
		assert.Equal(t, 7, remaining)
		assert.NotZero(t, resetAt)
	})

	t.Run("denied request takes nothing", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()

		remaining, _, err := store.ConsumeTokens(ctx, "k", 4, config)
		require.NoError(t, err)
		assert.Equal(t, 6, remaining)

		remaining, _, err = store.ConsumeTokens(ctx, "k", 3, config)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)

		remaining, _, err = store.ConsumeTokens(ctx, "k", 5, config)
		require.NoError(t, err)
		assert.Equal(t, -2, remaining)

		remaining, _, err = store.ConsumeTokens(ctx, "k", 3, config)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("refills tokens over time", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreClock(clk))

		remaining, _, err := store.ConsumeTokens(ctx, "k", config.Capacity, config)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)

		clk.Add(config.RefillInterval)
		remaining, _, err = store.ConsumeTokens(ctx, "k", 0, config)
		require.NoError(t, err)
		assert.Equal(t, config.RefillRate, remaining)

		clk.Add(config.RefillInterval + config.RefillInterval/2)
		remaining, _, err = store.ConsumeTokens(ctx, "k", 0, config)
		require.NoError(t, err)
		assert.Equal(t, config.RefillRate*2, remaining)

		clk.Add(config.RefillInterval / 2)
		remaining, _, err = store.ConsumeTokens(ctx, "k", 0, config)
		require.NoError(t, err)
		assert.Equal(t, config.RefillRate*3, remaining)
	})

	t.Run("caps tokens at capacity", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreClock(clk))

		_, _, err := store.ConsumeTokens(ctx, "k", 5, config)
		require.NoError(t, err)

		clk.Add(config.RefillInterval * 10)

		remaining, _, err := store.ConsumeTokens(ctx, "k", 0, config)
		require.NoError(t, err)
		assert.Equal(t, config.Capacity, remaining)
	})

	t.Run("reset restores capacity", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()

		_, _, err := store.ConsumeTokens(ctx, "k", 10, config)
		require.NoError(t, err)
		require.NoError(t, store.Reset(ctx, "k"))

		remaining, _, err := store.ConsumeTokens(ctx, "k", 1, config)
		require.NoError(t, err)
		assert.Equal(t, 9, remaining)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := store.ConsumeTokens(cctx, "k", 1, config)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryStore_Cleanup(t *testing.T) {
	t.Parallel()

	t.Run("removes stale buckets", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		store := ratelimiter.NewMemoryStore(
			ratelimiter.WithMemoryStoreClock(clk),
			ratelimiter.WithCleanupInterval(time.Minute),
			ratelimiter.WithStaleAfter(5*time.Minute),
		)
		config := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}

		_, _, err := store.ConsumeTokens(context.Background(), "k", 1, config)
		require.NoError(t, err)

		require.NoError(t, store.Start())
		assert.ErrorIs(t, store.Start(), ratelimiter.ErrAlreadyStarted)
		assert.True(t, store.Stats().IsRunning)

		require.Eventually(t, func() bool {
			clk.Add(time.Minute)
			return store.Stats().ActiveBuckets == 0
		}, time.Second, time.Millisecond)

		stats := store.Stats()
		assert.Equal(t, int64(1), stats.BucketsCreated)
		assert.Equal(t, int64(1), stats.BucketsRemoved)

		require.NoError(t, store.Stop())
		assert.ErrorIs(t, store.Stop(), ratelimiter.ErrNotStarted)
		assert.False(t, store.Stats().IsRunning)
	})

	t.Run("disabled cleanup cannot start", func(t *testing.T) {
		t.Parallel()

		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
		assert.ErrorIs(t, store.Start(), ratelimiter.ErrInvalidConfig)
	})
}
