package source

import (
	"log/slog"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/core/logger"
)

// Option configures a source.
type Option func(*options)

type options struct {
	clock  clock.Clock
	logger *slog.Logger
	name   string
	replay int
	dialer *websocket.Dialer
	header http.Header
}

func newOptions(opts []Option) options {
	o := options{
		clock:  clock.New(),
		logger: logger.Discard(),
		dialer: websocket.DefaultDialer,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// emitterOptions translates source options into options of the produced emitter.
func (o options) emitterOptions() []emitter.Option {
	return []emitter.Option{
		emitter.WithClock(o.clock),
		emitter.WithLogger(o.logger),
		emitter.WithName(o.name),
		emitter.WithReplay(o.replay),
	}
}

// WithClock sets the clock used by tickers. Nil is ignored.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger for the source and the emitter it produces. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithName names the produced emitter; the name appears in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithReplay enables the replay cache of the produced emitter.
func WithReplay(n int) Option {
	return func(o *options) {
		o.replay = n
	}
}

// WithDialer sets the dialer used by WebSocket. Nil is ignored.
func WithDialer(d *websocket.Dialer) Option {
	return func(o *options) {
		if d != nil {
			o.dialer = d
		}
	}
}

// WithHeader sets the handshake request header used by WebSocket.
func WithHeader(h http.Header) Option {
	return func(o *options) {
		o.header = h
	}
}
