// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/emitter/core/config"
//
//	func main() {
//		var cfg emitter.Config
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//
//		prices := emitter.NewFromConfig[float64](cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 source.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 source.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	// Each type has its own cache entry
//	config.MustLoad(&emitter.Config{})
//	config.MustLoad(&redis.Config{})
//
// Parse failures wrap ErrParsingConfig.
package config
