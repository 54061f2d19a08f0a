package source

import (
	"context"
	"time"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/core/logger"
)

// Interval returns an emitter that emits the current time every d while started.
//
// Example:
//
//	ticks := source.Interval(time.Second)
//	ticks.Start()
//	defer ticks.Stop()
func Interval(d time.Duration, opts ...Option) *emitter.Emitter[time.Time] {
	o := newOptions(opts)
	return newSource("interval", o, func(ctx context.Context, emit func(time.Time)) (func(), error) {
		if d <= 0 {
			return nil, ErrInvalidInterval
		}

		ticker := o.clock.Ticker(d)
		return func() {
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					emit(now)
				}
			}
		}, nil
	})
}

// Poll returns an emitter that calls fetch every d while started and emits each result.
// Failed fetches are logged and skipped; polling continues.
//
// Example:
//
//	rates := source.Poll(time.Minute, func(ctx context.Context) (Rate, error) {
//	    return client.Latest(ctx, "EUR")
//	})
func Poll[T any](d time.Duration, fetch func(context.Context) (T, error), opts ...Option) *emitter.Emitter[T] {
	o := newOptions(opts)
	return newSource("poll", o, func(ctx context.Context, emit func(T)) (func(), error) {
		if d <= 0 {
			return nil, ErrInvalidInterval
		}
		if fetch == nil {
			return nil, ErrNilFetch
		}

		ticker := o.clock.Ticker(d)
		return func() {
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					v, err := fetch(ctx)
					if err != nil {
						if ctx.Err() != nil {
							return
						}
						o.logger.WarnContext(ctx, "poll fetch failed",
							logger.Source("poll"),
							logger.Emitter(o.name),
							logger.Error(err))
						continue
					}
					emit(v)
				}
			}
		}, nil
	})
}
