package source

import "errors"

var (
	ErrInvalidInterval = errors.New("source: interval must be positive")
	ErrNilFetch        = errors.New("source: fetch function is nil")
	ErrNilChannel      = errors.New("source: channel is nil")
	ErrNilSubscribe    = errors.New("source: subscribe function is nil")
	ErrNilClient       = errors.New("source: redis client is nil")
	ErrSubscribeFailed = errors.New("source: subscribe failed")
	ErrDialFailed      = errors.New("source: websocket dial failed")
	ErrNoPaths         = errors.New("source: no paths to watch")
	ErrWatchFailed     = errors.New("source: file watch failed")
)
