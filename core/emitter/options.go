package emitter

import (
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/emitter/core/logger"
)

// Option configures an Emitter at construction time or through SetOptions.
type Option func(*options)

type options struct {
	replayMax int
	onStart   func()
	onStop    func()
	clock     clock.Clock
	logger    *slog.Logger
	name      string
}

// withDefaults fills the clock and logger left unset, as in a zero-value Emitter.
func (o options) withDefaults() options {
	if o.clock == nil {
		o.clock = clock.New()
	}
	o.logger = o.log()
	return o
}

func (o options) log() *slog.Logger {
	if o.logger == nil {
		return logger.Discard()
	}
	return o.logger
}

// WithReplay sets the replay cache capacity. Zero or a negative value disables replay.
//
// Example:
//
//	prices := emitter.New[float64](emitter.WithReplay(10))
func WithReplay(n int) Option {
	return func(o *options) {
		o.replayMax = max(n, 0)
	}
}

// WithStart sets the callback invoked by Start.
// Source adapters use it to attach their underlying listener.
func WithStart(fn func()) Option {
	return func(o *options) {
		o.onStart = fn
	}
}

// WithStop sets the callback invoked by Stop.
func WithStop(fn func()) Option {
	return func(o *options) {
		o.onStop = fn
	}
}

// WithClock sets the clock used by time-based operators derived from the emitter.
// Tests pass clock.NewMock() to control time deterministically.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger configures structured logging for the emitter.
// Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName sets a name used in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
