package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/core/config"
)

type replayConfig struct {
	ReplayMax int    `env:"CONFIG_TEST_REPLAY_MAX" envDefault:"2"`
	Name      string `env:"CONFIG_TEST_NAME"`
}

type pollConfig struct {
	Interval time.Duration `env:"CONFIG_TEST_POLL_INTERVAL" envDefault:"1s"`
}

type requiredConfig struct {
	URL string `env:"CONFIG_TEST_REQUIRED_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_REPLAY_MAX", "5")
	t.Setenv("CONFIG_TEST_NAME", "clicks")

	var cfg replayConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 5, cfg.ReplayMax)
	assert.Equal(t, "clicks", cfg.Name)

	// Cached per type: later environment changes are not observed.
	t.Setenv("CONFIG_TEST_REPLAY_MAX", "9")
	var again replayConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, cfg, again)
}

func TestLoadDefaults(t *testing.T) {
	var cfg pollConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, time.Second, cfg.Interval)
}

func TestLoadErrors(t *testing.T) {
	require.ErrorIs(t, config.Load[replayConfig](nil), config.ErrNilConfig)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}
