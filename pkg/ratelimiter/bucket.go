package ratelimiter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/emitter/core/logger"
)

// Store keeps token bucket state per key.
type Store interface {
	// ConsumeTokens takes tokens from the bucket for key when enough are available.
	// A negative remaining value means the request was denied and nothing was taken.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset drops the bucket for key.
	Reset(ctx context.Context, key string) error
}

// Result reports the outcome of a consumption.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	now       time.Time
}

// Allowed reports whether the tokens were taken.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait for the next refill.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(r.now), 0)
}

// Bucket is a token bucket rate limiter over a Store.
type Bucket struct {
	store  Store
	config Config
	now    func() time.Time
	logger *slog.Logger
}

// BucketOption configures a Bucket.
type BucketOption func(*Bucket)

// WithBucketLogger sets the logger used by release strategies built on the bucket.
func WithBucketLogger(l *slog.Logger) BucketOption {
	return func(b *Bucket) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBucket validates config and creates a limiter.
func NewBucket(store Store, config Config, opts ...BucketOption) (*Bucket, error) {
	if store == nil {
		return nil, ErrStoreUnavailable
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	now := time.Now
	if c, ok := store.(interface{ Now() time.Time }); ok {
		now = c.Now
	}

	b := &Bucket{store: store, config: config, now: now, logger: logger.Discard()}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 || n > b.config.Capacity {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidTokenCount, n)
	}

	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.config)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Limit:     b.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
		now:       b.now(),
	}, nil
}

// Reset restores the full capacity for key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
