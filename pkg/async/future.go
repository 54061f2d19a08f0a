package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
// A Future settles exactly once, either with a value or with an error.
type Future[U any] struct {
	val  U
	err  error
	once sync.Once
	done chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// settle stores the outcome and releases waiters. Later calls are ignored.
func (f *Future[U]) settle(val U, err error) bool {
	settled := false
	f.once.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
		settled = true
	})
	return settled
}

// Await waits for the computation to complete and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.val, f.err
}

// AwaitContext waits for the computation or for the context to end, whichever comes first.
// The future itself is not affected by the context.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the computation to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.val, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete checks if the computation is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the future settles.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async executes fn asynchronously and returns a Future for its result.
// The function accepts a context.Context and a parameter of any type T.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		// Early exit prevents running work for an already canceled caller
		if err := ctx.Err(); err != nil {
			var zero U
			f.settle(zero, err)
			return
		}

		val, err := fn(ctx, param)
		f.settle(val, err)
	}()

	return f
}

// Resolved returns a Future that is already settled with val.
func Resolved[U any](val U) *Future[U] {
	f := newFuture[U]()
	f.settle(val, nil)
	return f
}

// Rejected returns a Future that is already settled with err.
func Rejected[U any](err error) *Future[U] {
	f := newFuture[U]()
	var zero U
	f.settle(zero, err)
	return f
}

// NewPromise returns an unsettled Future together with functions that settle it.
// Only the first call to resolve or reject has an effect; both report whether they won.
//
// Example:
//
//	future, resolve, _ := async.NewPromise[string]()
//	go func() { resolve("done") }()
//	val, err := future.Await()
func NewPromise[U any]() (*Future[U], func(U) bool, func(error) bool) {
	f := newFuture[U]()

	resolve := func(val U) bool {
		return f.settle(val, nil)
	}
	reject := func(err error) bool {
		var zero U
		return f.settle(zero, err)
	}

	return f, resolve, reject
}
