// Package event provides the envelope and delivery targets used when emitted values leave
// the propagation graph.
//
// An Event wraps a value with an ID (UUID), a name and a timestamp. A Target receives
// events; emitter.ThenDispatch subscribes a sink that wraps every emitted value into an
// Event and hands it to a Target.
//
// # Targets
//
// ChannelTarget delivers into a buffered channel without blocking:
//
//	target := event.NewChannelTarget(event.WithBufferSize(100))
//	defer target.Close()
//
//	emitter.ThenDispatch(prices, target, "price.updated")
//
//	for evt := range target.Events() {
//		fmt.Println(evt.Name, evt.Payload)
//	}
//
// JSONTarget writes one JSON document per event:
//
//	emitter.ThenDispatch(prices, event.NewJSONTarget(os.Stdout), "price.updated")
//
// TargetFunc adapts a plain function:
//
//	target := event.TargetFunc(func(ctx context.Context, evt event.Event) error {
//		return publish(ctx, evt)
//	})
//
// # Errors
//
//   - ErrBufferFull: the channel target's buffer is full and the event was dropped
//   - ErrTargetClosed: the target was closed
package event
