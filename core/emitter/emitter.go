package emitter

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/emitter/core/logger"
	"github.com/dmitrymomot/emitter/pkg/async"
)

// Emitter broadcasts values of type T to its subscribers and optionally keeps a bounded
// replay cache of the most recent values.
//
// All methods are safe for concurrent use. Notification runs on the goroutine that calls
// Emit, against the subscriber list as it was when the pass began; subscribers may
// subscribe, unsubscribe or emit re-entrantly. The zero value is an emitter with no
// replay cache, no name and logging disabled.
type Emitter[T any] struct {
	mu     sync.RWMutex
	subs   []Subscriber[T] // copy-on-write, passes iterate a stale header safely
	replay []T
	opts   options

	// pending holds live values queued for subscribers still receiving their replay.
	pending map[Subscriber[T]][]T
}

// New creates an Emitter.
//
// Example:
//
//	clicks := emitter.New[Click](
//	    emitter.WithReplay(1),
//	    emitter.WithName("clicks"),
//	)
func New[T any](opts ...Option) *Emitter[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Emitter[T]{opts: o.withDefaults()}
}

// SetOptions applies options to a live emitter. Lowering the replay capacity trims the
// cache from the front. Emitters already derived from this one are not affected.
func (e *Emitter[T]) SetOptions(opts ...Option) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, opt := range opts {
		opt(&e.opts)
	}
	e.trimReplay()
}

// Start invokes the configured start callback, if any.
func (e *Emitter[T]) Start() {
	e.mu.RLock()
	fn := e.opts.onStart
	e.mu.RUnlock()

	if fn != nil {
		fn()
	}
}

// Stop invokes the configured stop callback, if any.
func (e *Emitter[T]) Stop() {
	e.mu.RLock()
	fn := e.opts.onStop
	e.mu.RUnlock()

	if fn != nil {
		fn()
	}
}

// Subscribe registers s and returns a handle that cancels the registration.
// Registering a subscriber that is already present does not duplicate it.
// Returns ErrCircularReference if s forwards into e itself.
func (e *Emitter[T]) Subscribe(s Subscriber[T]) (*Subscription[T], error) {
	return e.subscribe(s, false)
}

// SubscribeReplay registers s and synchronously delivers every cached value to it,
// oldest first, before returning. Values emitted concurrently while the replay runs are
// held back and delivered to s after the cached values, in emission order.
func (e *Emitter[T]) SubscribeReplay(s Subscriber[T]) (*Subscription[T], error) {
	return e.subscribe(s, true)
}

// SubscribeFunc registers fn as a callback subscriber.
// A nil fn registers nothing: the returned handle is not attached to any subscriber and
// its Cancel is a no-op.
func (e *Emitter[T]) SubscribeFunc(fn func(T)) *Subscription[T] {
	sub, err := e.subscribe(Callback(fn), false)
	if err != nil {
		// Only a nil fn can fail here.
		return &Subscription[T]{emitter: e}
	}
	return sub
}

// SubscribeTo registers e as a forwarding subscriber of src.
func (e *Emitter[T]) SubscribeTo(src *Emitter[T]) (*Subscription[T], error) {
	if src == nil {
		return nil, ErrInvalidSubscriber
	}
	return src.Subscribe(Forward(e))
}

func (e *Emitter[T]) subscribe(s Subscriber[T], replay bool) (*Subscription[T], error) {
	if !s.valid() {
		return nil, ErrInvalidSubscriber
	}
	if s.kind == kindForward && s.dst == e {
		return nil, ErrCircularReference
	}

	e.mu.Lock()
	if !slices.Contains(e.subs, s) {
		next := make([]Subscriber[T], len(e.subs), len(e.subs)+1)
		copy(next, e.subs)
		e.subs = append(next, s)
	}
	var cached []T
	if _, replaying := e.pending[s]; replay && len(e.replay) > 0 && !replaying {
		cached = slices.Clone(e.replay)
		if e.pending == nil {
			e.pending = make(map[Subscriber[T]][]T)
		}
		e.pending[s] = nil
	}
	count := len(e.subs)
	log, name := e.opts.log(), e.opts.name
	e.mu.Unlock()

	log.Debug("subscriber added",
		logger.Emitter(name),
		logger.Subscribers(count),
		slog.Bool("forward", s.IsForward()))

	if cached != nil {
		e.replayTo(s, cached)
	}

	return &Subscription[T]{emitter: e, subscriber: s}, nil
}

// replayTo delivers cached to s, then drains the values Emit queued for s meanwhile.
// s leaves the pending set only once its queue is empty, so no live value overtakes a
// queued one.
func (e *Emitter[T]) replayTo(s Subscriber[T], cached []T) {
	batch := cached
	for {
		for _, v := range batch {
			s.notify(v)
		}

		e.mu.Lock()
		queued, ok := e.pending[s]
		if !ok || len(queued) == 0 {
			delete(e.pending, s)
			e.mu.Unlock()
			return
		}
		e.pending[s] = nil
		e.mu.Unlock()
		batch = queued
	}
}

// Unsubscribe removes s. Removing a subscriber that is not present is a no-op.
func (e *Emitter[T]) Unsubscribe(s Subscriber[T]) {
	e.mu.Lock()
	idx := slices.Index(e.subs, s)
	if idx < 0 {
		e.mu.Unlock()
		return
	}

	next := make([]Subscriber[T], 0, len(e.subs)-1)
	next = append(next, e.subs[:idx]...)
	e.subs = append(next, e.subs[idx+1:]...)
	delete(e.pending, s)
	count := len(e.subs)
	log, name := e.opts.log(), e.opts.name
	e.mu.Unlock()

	log.Debug("subscriber removed",
		logger.Emitter(name),
		logger.Subscribers(count))
}

// Subscribed reports whether s is currently registered.
func (e *Emitter[T]) Subscribed(s Subscriber[T]) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Contains(e.subs, s)
}

// Len returns the number of registered subscribers.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

// Replay returns a copy of the replay cache, oldest first.
func (e *Emitter[T]) Replay() []T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.replay)
}

// Name returns the configured name.
func (e *Emitter[T]) Name() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opts.name
}

// Emit records v in the replay cache, when enabled, and notifies every subscriber.
// Callbacks run synchronously in registration order; forwarding subscribers receive a
// nested Emit. A panicking callback is not recovered: it unwinds out of Emit and the
// remaining subscribers of this pass are skipped.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	if e.opts.replayMax > 0 {
		e.replay = append(e.replay, v)
		e.trimReplay()
	}
	subs := e.subs
	if len(e.pending) > 0 {
		subs = make([]Subscriber[T], 0, len(e.subs))
		for _, s := range e.subs {
			if queued, ok := e.pending[s]; ok {
				e.pending[s] = append(queued, v)
				continue
			}
			subs = append(subs, s)
		}
	}
	e.mu.Unlock()

	for _, s := range subs {
		s.notify(v)
	}
}

// EmitFuture waits for f to settle and emits its value.
// If f rejects, nothing is emitted and the error is returned wrapped in ErrRejected.
// If ctx ends first, nothing is emitted and ctx.Err() is returned.
func (e *Emitter[T]) EmitFuture(ctx context.Context, f *async.Future[T]) error {
	select {
	case <-f.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	v, err := f.Await()
	if err != nil {
		e.mu.RLock()
		log, name := e.opts.log(), e.opts.name
		e.mu.RUnlock()

		log.WarnContext(ctx, "future rejected, nothing emitted",
			logger.Emitter(name),
			logger.Error(err))
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}

	e.Emit(v)
	return nil
}

// EmitLater runs EmitFuture in the background. The returned future completes when the
// value has been dispatched, or carries the EmitFuture error.
func (e *Emitter[T]) EmitLater(ctx context.Context, f *async.Future[T]) *async.Future[struct{}] {
	return async.Exec(ctx, f, e.EmitFuture)
}

// EmitAll emits every value in order. Each value is fully dispatched before the next.
func (e *Emitter[T]) EmitAll(values ...T) {
	for _, v := range values {
		e.Emit(v)
	}
}

// EmitAllFutures emits the futures in order, waiting for each emission to complete before
// starting the next. It stops at the first error.
func (e *Emitter[T]) EmitAllFutures(ctx context.Context, futures ...*async.Future[T]) error {
	for _, f := range futures {
		if err := e.EmitFuture(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// trimReplay drops the oldest values beyond the replay capacity. Caller holds e.mu.
func (e *Emitter[T]) trimReplay() {
	limit := max(e.opts.replayMax, 0)
	if over := len(e.replay) - limit; over > 0 {
		e.replay = slices.Delete(e.replay, 0, over)
	}
	if limit == 0 {
		e.replay = nil
	}
}

// snapshot returns the options derived emitters inherit, with defaults filled in for a
// zero-value emitter.
func (e *Emitter[T]) snapshot() options {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.opts.withDefaults()
}
