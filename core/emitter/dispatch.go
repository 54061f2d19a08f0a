package emitter

import (
	"context"

	"github.com/dmitrymomot/emitter/core/event"
	"github.com/dmitrymomot/emitter/core/logger"
)

// ThenDispatch subscribes a sink that wraps every value of src into an event.Event named
// name and delivers it to target. Delivery errors are logged and do not interrupt the
// notification pass. Cancel the returned subscription to detach the sink.
//
// Example:
//
//	target := event.NewChannelTarget()
//	sub := emitter.ThenDispatch(prices, target, "price.updated")
//	defer sub.Cancel()
func ThenDispatch[T any](src *Emitter[T], target event.Target, name string) *Subscription[T] {
	o := src.snapshot()
	return src.SubscribeFunc(func(v T) {
		ctx := context.Background()
		evt := event.New(name, v, o.clock.Now())
		if err := target.Dispatch(ctx, evt); err != nil {
			o.logger.ErrorContext(ctx, "event dispatch failed",
				logger.Emitter(o.name),
				logger.Event(name),
				logger.Error(err))
		}
	})
}
