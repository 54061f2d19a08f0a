package broadcast

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/core/logger"
)

// DefaultBufferSize is the per-subscriber channel capacity.
const DefaultBufferSize = 100

// Message wraps one emitted value.
type Message[T any] struct {
	Data T
}

// Option configures a Subscriber.
type Option func(*options)

type options struct {
	bufferSize int
	logger     *slog.Logger
}

// WithBufferSize sets the channel capacity. Non-positive sizes are ignored.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithLogger sets the logger used to report dropped messages. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Subscriber receives the values of an emitter through a buffered channel.
type Subscriber[T any] struct {
	ch      chan Message[T]
	sub     *emitter.Subscription[T]
	logger  *slog.Logger
	name    string
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
	stop   func() bool
}

// Subscribe attaches a channel subscriber to src. Delivery never blocks the emitter: when
// the buffer is full the message is dropped and counted. The subscription ends when ctx
// is done or Close is called; the channel is closed then.
func Subscribe[T any](ctx context.Context, src *emitter.Emitter[T], opts ...Option) *Subscriber[T] {
	o := options{
		bufferSize: DefaultBufferSize,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Subscriber[T]{
		ch:     make(chan Message[T], o.bufferSize),
		logger: o.logger,
		name:   src.Name(),
	}
	s.sub = src.SubscribeFunc(s.deliver)
	s.stop = context.AfterFunc(ctx, func() {
		_ = s.Close()
	})
	return s
}

func (s *Subscriber[T]) deliver(v T) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	select {
	case s.ch <- Message[T]{Data: v}:
	default:
		n := s.dropped.Add(1)
		s.logger.Warn("message dropped, subscriber buffer full",
			logger.Emitter(s.name),
			logger.Count("dropped", int(n)))
	}
}

// Receive returns the message channel. It is closed when the subscription ends.
func (s *Subscriber[T]) Receive() <-chan Message[T] {
	return s.ch
}

// Dropped returns the number of messages dropped because the buffer was full.
func (s *Subscriber[T]) Dropped() int64 {
	return s.dropped.Load()
}

// Close detaches the subscriber and closes its channel.
// Returns ErrSubscriberClosed if already closed.
func (s *Subscriber[T]) Close() error {
	s.sub.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSubscriberClosed
	}
	s.closed = true
	close(s.ch)
	if s.stop != nil {
		s.stop()
	}
	return nil
}
