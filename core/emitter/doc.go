// Package emitter provides a small reactive propagation primitive: an Emitter broadcasts
// discrete values to subscribers, and a library of operators derives new emitters that
// receive a transformed or gated subset of those values.
//
// # Core Components
//
// Emitter holds an ordered list of subscribers and an optional bounded replay cache.
// Emit notifies every subscriber synchronously, on the caller's goroutine.
//
// Subscriber is either a Callback (a function) or a Forward (another Emitter that
// re-emits the value). Subscribers are compared by identity: keep the value returned by
// Callback to unsubscribe it later.
//
// Subscription is the handle returned by Subscribe. Cancel is idempotent.
//
// Releaser is the release contract used by the gating operators Pass, Wait and Buffer.
//
// # Basic Usage
//
//	prices := emitter.New[float64](emitter.WithReplay(1))
//
//	sub := prices.SubscribeFunc(func(p float64) {
//		fmt.Println("price", p)
//	})
//	defer sub.Cancel()
//
//	prices.Emit(42)
//
// Emitters can be chained. A forwarding subscriber re-emits into its own subscribers:
//
//	audit := emitter.New[float64]()
//	if _, err := audit.SubscribeTo(prices); err != nil {
//		return err
//	}
//
// An emitter cannot subscribe to itself; Subscribe and SubscribeTo return
// ErrCircularReference.
//
// # Pending Values
//
// Values that are not available yet are passed as futures. EmitFuture waits for the
// future and emits its value; a rejected future emits nothing and returns an error
// wrapping ErrRejected:
//
//	future := async.Async(ctx, id, loadPrice)
//	if err := prices.EmitFuture(ctx, future); err != nil {
//		log.Warn("price not emitted", logger.Error(err))
//	}
//
// # Replay
//
// WithReplay(n) keeps the last n values. SubscribeReplay delivers them, oldest first,
// before it returns:
//
//	prices := emitter.New[float64](emitter.WithReplay(2))
//	prices.EmitAll(1, 2, 3)
//	prices.SubscribeReplay(emitter.Callback(func(p float64) {
//		fmt.Println(p) // prints 2, then 3
//	}))
//
// # Operators
//
// Operators subscribe to a source and return a child emitter. The child inherits the
// source's replay capacity, clock and logger at creation time.
//
//	evens := emitter.Filter(numbers, func(n int) bool { return n%2 == 0 })
//	labels := emitter.Map(evens, strconv.Itoa)
//	total := emitter.Reduce(numbers, func(sum, n int) int { return sum + n }, 0)
//	windows := emitter.Cache(numbers, 3)
//	items := emitter.Unpack(batches)
//
// Time-based operators (Delay, DebounceTime, AuditTime) use the source's clock. Inject a
// mock clock in tests:
//
//	clk := clock.NewMock()
//	input := emitter.New[string](emitter.WithClock(clk))
//	quiet := emitter.DebounceTime(input, 300*time.Millisecond)
//
// # Gating Operators and Release Strategies
//
// Pass forwards at most one value per release window, Wait forwards what its releaser
// releases, and Buffer collects values and forwards them as a batch on release:
//
//	flushes := emitter.New[struct{}]()
//	batches := emitter.Buffer(events, emitter.OnEmit[[]Event](flushes))
//	everyTenth := emitter.Wait(events, emitter.Count[Event](10))
//	firstPerWindow := emitter.Wait(events, emitter.Timeout[Event](time.Second))
//
// Strategies: OnEmit, After, DebounceRelease, Timeout, Count and Length.
//
// # Merge, Promise and Dispatch
//
// Merge combines sources once started; Promise resolves with the next value;
// ThenDispatch wraps values into event.Event and delivers them to an event.Target.
//
// # Lifecycle
//
// Start and Stop invoke the callbacks configured with WithStart and WithStop. Source
// adapters use them to attach and detach the resource they read from.
//
// # Error Handling
//
// Callbacks that panic are not recovered: the panic unwinds out of Emit and the
// remaining subscribers of that pass are not notified.
package emitter
