package source

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/emitter/core/emitter"
)

// Config holds source settings loaded from the environment.
type Config struct {
	PollInterval     time.Duration `env:"SOURCE_POLL_INTERVAL" envDefault:"1s"`
	HandshakeTimeout time.Duration `env:"SOURCE_WS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	ReplayMax        int           `env:"SOURCE_REPLAY_MAX" envDefault:"0"`
}

// DefaultConfig returns the defaults used when no environment is set.
func DefaultConfig() Config {
	return Config{
		PollInterval:     time.Second,
		HandshakeTimeout: 10 * time.Second,
	}
}

// PollFromConfig creates a Poll source from configuration.
// Additional options override config values.
func PollFromConfig[T any](cfg Config, fetch func(context.Context) (T, error), opts ...Option) *emitter.Emitter[T] {
	allOpts := append([]Option{WithReplay(cfg.ReplayMax)}, opts...)
	return Poll(cfg.PollInterval, fetch, allOpts...)
}

// WebSocketFromConfig creates a WebSocket source from configuration.
// Additional options override config values.
func WebSocketFromConfig(cfg Config, url string, opts ...Option) *emitter.Emitter[WebSocketMessage] {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = cfg.HandshakeTimeout

	allOpts := append([]Option{
		WithReplay(cfg.ReplayMax),
		WithDialer(&dialer),
	}, opts...)
	return WebSocket(url, allOpts...)
}
