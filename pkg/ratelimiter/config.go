package ratelimiter

import (
	"fmt"
	"time"
)

// Config describes one token bucket.
type Config struct {
	// Capacity is the maximum burst.
	Capacity int `env:"RATELIMIT_CAPACITY" envDefault:"10"`
	// RefillRate is the number of tokens added every RefillInterval.
	RefillRate     int           `env:"RATELIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATELIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
