package ratelimiter

import (
	"context"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/core/logger"
)

// Release returns a release strategy that releases a value only while the bucket for
// key(value) has a token. Denied values are dropped. A nil key uses one shared bucket.
//
// Example:
//
//	limiter, _ := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), cfg)
//	throttled := emitter.Wait(requests, ratelimiter.Release(limiter, func(r Request) string {
//	    return r.UserID
//	}))
func Release[T any](limiter *Bucket, key func(T) string) emitter.Releaser[T] {
	return func(data T, release func(T)) {
		k := ""
		if key != nil {
			k = key(data)
		}

		res, err := limiter.Allow(context.Background(), k)
		if err != nil {
			limiter.logger.Error("rate limit check failed",
				logger.Component("ratelimiter"),
				logger.Key("bucket", k),
				logger.Error(err))
			return
		}
		if !res.Allowed() {
			limiter.logger.Debug("value throttled",
				logger.Component("ratelimiter"),
				logger.Key("bucket", k),
				logger.Duration(res.RetryAfter()))
			return
		}
		release(data)
	}
}
