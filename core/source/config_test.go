package source_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/core/config"
	"github.com/dmitrymomot/emitter/core/source"
)

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("SOURCE_POLL_INTERVAL", "250ms")
	t.Setenv("SOURCE_REPLAY_MAX", "2")

	var cfg source.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.HandshakeTimeout)
	assert.Equal(t, 2, cfg.ReplayMax)

	src := source.PollFromConfig(cfg, func(context.Context) (int, error) { return 1, nil })
	src.EmitAll(1, 2, 3)
	assert.Equal(t, []int{2, 3}, src.Replay())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := source.DefaultConfig()
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.HandshakeTimeout)
	assert.Zero(t, cfg.ReplayMax)
}
