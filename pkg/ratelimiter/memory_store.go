package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/emitter/core/logger"
)

// bucket represents a token bucket state.
type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time // Used by cleanup to identify stale buckets
}

// MemoryStore implements Store in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]*bucket

	cleanupInterval time.Duration
	staleAfter      time.Duration
	clock           clock.Clock
	logger          *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}

	bucketsCreated atomic.Int64
	bucketsRemoved atomic.Int64
}

// MemoryStoreStats provides observability metrics for monitoring and debugging
type MemoryStoreStats struct {
	BucketsCreated int64 // Total number of buckets created
	BucketsRemoved int64 // Total number of stale buckets removed
	ActiveBuckets  int   // Current number of active buckets
	IsRunning      bool  // Whether the cleanup goroutine is running
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often stale buckets are removed.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithStaleAfter sets how long an unused bucket is kept.
func WithStaleAfter(d time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if d > 0 {
			ms.staleAfter = d
		}
	}
}

// WithMemoryStoreClock sets the clock used for refills and cleanup.
func WithMemoryStoreClock(c clock.Clock) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if c != nil {
			ms.clock = c
		}
	}
}

// WithMemoryStoreLogger sets the logger for internal operations.
func WithMemoryStoreLogger(l *slog.Logger) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if l != nil {
			ms.logger = l
		}
	}
}

// NewMemoryStore creates a new in-memory store.
// Call Start to begin background cleanup.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucket),
		cleanupInterval: 5 * time.Minute,
		staleAfter:      time.Hour,
		clock:           clock.New(),
		logger:          logger.Discard(),
	}

	for _, opt := range opts {
		opt(ms)
	}

	return ms
}

// Now returns the store's current time.
func (ms *MemoryStore) Now() time.Time {
	return ms.clock.Now()
}

// ConsumeTokens implements Store.
func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.clock.Now()
	b, exists := ms.buckets[key]

	if !exists {
		b = &bucket{
			tokens:     config.Capacity,
			lastRefill: now,
		}
		ms.buckets[key] = b
		ms.bucketsCreated.Add(1)
	}

	// Cap intervals to prevent integer overflow in high-capacity/low-rate scenarios
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/config.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * config.RefillInterval)
		if b.tokens == config.Capacity {
			b.lastRefill = now
		}
	}
	b.lastAccess = now

	resetAt = b.lastRefill.Add(config.RefillInterval)
	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}

	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

// Reset implements Store.
func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.buckets, key)
	return nil
}

// Start launches the background cleanup. It returns ErrAlreadyStarted if running and
// ErrInvalidConfig if cleanup is disabled.
func (ms *MemoryStore) Start() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.cancel != nil {
		return ErrAlreadyStarted
	}
	if ms.cleanupInterval <= 0 {
		return ErrInvalidConfig
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	ms.cancel, ms.done = cancel, done

	ticker := ms.clock.Ticker(ms.cleanupInterval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ms.removeStale()
			}
		}
	}()

	ms.logger.Info("memory store cleanup started",
		logger.Component("ratelimiter"),
		logger.Duration(ms.cleanupInterval))
	return nil
}

// Stop ends the background cleanup and waits for it.
func (ms *MemoryStore) Stop() error {
	ms.mu.Lock()
	cancel, done := ms.cancel, ms.done
	ms.cancel, ms.done = nil, nil
	ms.mu.Unlock()

	if cancel == nil {
		return ErrNotStarted
	}

	cancel()
	<-done

	ms.logger.Info("memory store cleanup stopped", logger.Component("ratelimiter"))
	return nil
}

// removeStale removes buckets that have not been accessed within staleAfter.
func (ms *MemoryStore) removeStale() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.clock.Now()
	removed := 0
	for key, b := range ms.buckets {
		if now.Sub(b.lastAccess) > ms.staleAfter {
			delete(ms.buckets, key)
			removed++
		}
	}

	if removed > 0 {
		ms.bucketsRemoved.Add(int64(removed))
		ms.logger.Debug("stale buckets removed",
			logger.Component("ratelimiter"),
			logger.Count("removed", removed))
	}
}

// Stats returns current memory store statistics.
func (ms *MemoryStore) Stats() MemoryStoreStats {
	ms.mu.RLock()
	isRunning := ms.cancel != nil
	activeBuckets := len(ms.buckets)
	ms.mu.RUnlock()

	return MemoryStoreStats{
		BucketsCreated: ms.bucketsCreated.Load(),
		BucketsRemoved: ms.bucketsRemoved.Load(),
		ActiveBuckets:  activeBuckets,
		IsRunning:      isRunning,
	}
}
