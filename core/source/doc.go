// Package source adapts external inputs into emitters.
//
// Every adapter returns an *emitter.Emitter whose Start attaches the underlying resource
// and launches a read loop, and whose Stop detaches the resource and waits for the loop
// to exit. Start while running is a no-op. A failure to attach is logged and leaves the
// source stopped.
//
//	ticks := source.Interval(time.Second, source.WithName("ticks"))
//	ticks.SubscribeFunc(func(t time.Time) { fmt.Println(t) })
//	ticks.Start()
//	defer ticks.Stop()
//
// Adapters:
//
//   - Interval: current time on a ticker
//   - Poll: results of a fetch function on a ticker, failures logged and skipped
//   - Channel: values received from a Go channel
//   - WebSocket: frames read from a gorilla/websocket connection dialed on Start
//   - PubSub, Redis: messages of a go-redis subscription
//   - FileWatch: fsnotify events for a set of paths
//
// Values are emitted on the loop goroutine. Do not call Stop from a subscriber of the
// same source.
package source
