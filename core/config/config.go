package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	dotenvErr  error

	cache sync.Map // reflect.Type -> any (T value)
	mu    sync.Mutex
)

// Load parses environment variables into cfg. The first call for a given type parses the
// environment; later calls for the same type copy the cached value into cfg.
// A .env file in the working directory is loaded once, if present; existing environment
// variables take precedence over it.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotenvErr = fmt.Errorf("failed to load .env file: %w", err)
		}
	})
	if dotenvErr != nil {
		return dotenvErr
	}

	typ := reflect.TypeOf(cfg).Elem()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	// Another goroutine may have loaded the type while we waited.
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}

	cache.Store(typ, parsed)
	*cfg = parsed
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
