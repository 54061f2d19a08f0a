// Package ratelimiter provides token bucket rate limiting and a release strategy that
// throttles emitters.
//
// # Token Bucket Algorithm
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every RefillInterval.
// Every request takes tokens; a request that finds too few is denied and takes nothing.
// This supports bursts while bounding the average rate.
//
// # Usage
//
//	store := ratelimiter.NewMemoryStore()
//
//	// 100 tokens capacity, refill 10 per second
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       100,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := limiter.Allow(ctx, "user:123")
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		log.Printf("Rate limited. Retry after: %v", result.RetryAfter())
//	}
//
// # Throttling Emitters
//
// Release adapts a bucket to emitter.Wait. Values are keyed, so each key is throttled
// independently:
//
//	perUser := emitter.Wait(clicks, ratelimiter.Release(limiter, func(c Click) string {
//		return c.UserID
//	}))
//
// # Memory Store
//
// MemoryStore keeps buckets in memory. Start launches a cleanup loop that removes buckets
// unused for an hour (WithStaleAfter); Stop ends it. Inject a mock clock with
// WithMemoryStoreClock to drive refills in tests.
package ratelimiter
