package event

import "errors"

var (
	// ErrBufferFull is returned when the channel buffer is full.
	ErrBufferFull = errors.New("event buffer is full")

	// ErrTargetClosed is returned when dispatching to a closed target.
	ErrTargetClosed = errors.New("event target is closed")
)
