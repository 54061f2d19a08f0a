package source

import (
	"context"

	"github.com/dmitrymomot/emitter/core/emitter"
)

// Channel returns an emitter that emits every value received from ch while started.
// The loop ends when ch is closed; call Stop before starting again.
func Channel[T any](ch <-chan T, opts ...Option) *emitter.Emitter[T] {
	return newSource("channel", newOptions(opts), func(ctx context.Context, emit func(T)) (func(), error) {
		if ch == nil {
			return nil, ErrNilChannel
		}

		return func() {
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-ch:
					if !ok {
						return
					}
					emit(v)
				}
			}
		}, nil
	})
}
