package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")

	// ErrParsingConfig wraps failures reported by the environment parser.
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
