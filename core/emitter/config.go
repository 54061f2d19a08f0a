package emitter

// Config holds environment-driven emitter settings.
type Config struct {
	ReplayMax int    `env:"EMITTER_REPLAY_MAX" envDefault:"0"`
	Name      string `env:"EMITTER_NAME"`
}

// DefaultConfig returns an emitter configuration with replay disabled.
func DefaultConfig() Config {
	return Config{}
}

// NewFromConfig creates an Emitter from configuration.
// Additional options override config values.
//
// Example:
//
//	var cfg emitter.Config
//	config.MustLoad(&cfg)
//	clicks := emitter.NewFromConfig[Click](cfg, emitter.WithLogger(log))
func NewFromConfig[T any](cfg Config, opts ...Option) *Emitter[T] {
	allOpts := append([]Option{
		WithReplay(cfg.ReplayMax),
		WithName(cfg.Name),
	}, opts...)

	return New[T](allOpts...)
}
