// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small logger factory with environment presets and a set of attribute helpers
// used across the emitter packages.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/emitter/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// Components in this module default to Discard() and accept a logger through their
// With*Logger options, so nothing is written unless a logger is injected:
//
//	clicks := emitter.New[Click](emitter.WithLogger(log), emitter.WithName("clicks"))
//
// # Attribute Helpers
//
// Helpers follow the empty Attr pattern: nil errors and empty names produce an empty
// slog.Attr, which slog ignores.
//
//	log.Warn("future rejected",
//		logger.Emitter("clicks"),
//		logger.Error(err),
//	)
//
//	log.Debug("subscriber added",
//		logger.Emitter("clicks"),
//		logger.Subscribers(3),
//	)
//
// Available helpers:
//
//   - Errors: Error, Errors
//   - Timing: Duration, Elapsed
//   - Propagation: Emitter, Subscribers, ReplaySize, Source
//   - Metadata: Component, Event, Count, Key, Group
//   - Debugging: Stack, Caller
package logger
