package emitter

import (
	"context"

	"github.com/dmitrymomot/emitter/pkg/async"
)

// Promise returns a future that resolves with the next value e emits. The internal
// subscriber removes itself as soon as it has seen one value. If ctx ends first the
// subscriber is removed and the future rejects with ctx.Err().
//
// Example:
//
//	next, err := ready.Promise(ctx).Await()
func (e *Emitter[T]) Promise(ctx context.Context) *async.Future[T] {
	future, resolve, reject := async.NewPromise[T]()

	var self Subscriber[T]
	self = Callback(func(v T) {
		if resolve(v) {
			e.Unsubscribe(self)
		}
	})

	if _, err := e.Subscribe(self); err != nil {
		reject(err)
		return future
	}

	if ctx.Done() == nil {
		return future
	}

	go func() {
		select {
		case <-future.Done():
		case <-ctx.Done():
			e.Unsubscribe(self)
			reject(ctx.Err())
		}
	}()

	return future
}
