package broadcast

import "errors"

// ErrSubscriberClosed is returned when closing a subscriber twice.
var ErrSubscriberClosed = errors.New("broadcast: subscriber is closed")
