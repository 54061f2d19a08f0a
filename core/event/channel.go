package event

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/emitter/core/logger"
)

const (
	// DefaultChannelBufferSize is the default buffer size for ChannelTarget.
	DefaultChannelBufferSize = 100
)

// ChannelTarget delivers events into a buffered channel.
// Dispatch never blocks: when the buffer is full it returns ErrBufferFull.
//
// Example:
//
//	target := event.NewChannelTarget(event.WithBufferSize(16))
//	defer target.Close()
//
//	go func() {
//	    for evt := range target.Events() {
//	        handle(evt)
//	    }
//	}()
type ChannelTarget struct {
	ch     chan Event
	logger *slog.Logger
	mu     sync.RWMutex
	closed bool
}

// ChannelOption configures a ChannelTarget.
type ChannelOption func(*ChannelTarget)

// WithBufferSize sets the buffer size for the event channel.
// Non-positive sizes are ignored.
func WithBufferSize(size int) ChannelOption {
	return func(t *ChannelTarget) {
		if size > 0 {
			t.ch = make(chan Event, size)
		}
	}
}

// WithChannelLogger configures structured logging for the target.
func WithChannelLogger(l *slog.Logger) ChannelOption {
	return func(t *ChannelTarget) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewChannelTarget creates a channel-backed target.
func NewChannelTarget(opts ...ChannelOption) *ChannelTarget {
	t := &ChannelTarget{
		ch:     make(chan Event, DefaultChannelBufferSize),
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Dispatch implements Target.
func (t *ChannelTarget) Dispatch(ctx context.Context, evt Event) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return ErrTargetClosed
	}

	select {
	case t.ch <- evt:
		t.logger.DebugContext(ctx, "event dispatched",
			logger.Event(evt.Name),
			slog.String("event_id", evt.ID))
		return nil
	default:
		t.logger.WarnContext(ctx, "event dropped, buffer full",
			logger.Event(evt.Name),
			slog.String("event_id", evt.ID))
		return ErrBufferFull
	}
}

// Events returns the receive side of the channel. It is closed by Close.
func (t *ChannelTarget) Events() <-chan Event {
	return t.ch
}

// Close closes the channel. Dispatch fails with ErrTargetClosed afterwards.
// Calling Close more than once returns ErrTargetClosed.
func (t *ChannelTarget) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrTargetClosed
	}

	t.closed = true
	close(t.ch)
	t.logger.Info("channel target closed")
	return nil
}
