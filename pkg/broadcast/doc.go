// Package broadcast bridges an emitter to channel consumers.
//
// Subscribe attaches a buffered channel to an emitter. Delivery is non-blocking so that
// slow consumers never stall the emitter's notification pass: when a subscriber's buffer
// is full the message is dropped for that subscriber and counted.
//
// # Usage
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	sub := broadcast.Subscribe(ctx, prices, broadcast.WithBufferSize(16))
//
//	go func() {
//		for msg := range sub.Receive() {
//			fmt.Printf("Received: %v\n", msg.Data)
//		}
//	}()
//
//	prices.Emit(42)
//
// # Context Integration
//
// The subscription ends, and its channel is closed, when the context is done:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	sub := broadcast.Subscribe(ctx, prices)
//	// Subscription will be automatically cleaned up after 30 seconds
//
// # Slow Consumers
//
// Dropped reports how many messages a subscriber missed. Recommended buffer sizes:
// 10-100 for low-volume, 100-1000 for high-volume emitters.
//
// # Thread Safety
//
// Subscribers are safe for concurrent use. Close may be called from any goroutine and
// returns ErrSubscriberClosed after the first call.
package broadcast
