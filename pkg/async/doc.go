// Package async provides utilities for asynchronous programming with Go generics.
//
// This package implements a Future pattern for non-blocking operations with timeout support
// and coordination utilities for managing multiple asynchronous computations. Futures are the
// explicit "pending result" handles accepted by emitter.EmitFuture.
//
// # Core Types
//
// Future[U] represents the result of an asynchronous computation. It provides methods
// to wait for completion (Await, AwaitContext), check status without blocking (IsComplete,
// Done), and handle timeouts (AwaitWithTimeout).
//
// # Usage
//
// Basic asynchronous operation:
//
//	future := async.Async(ctx, 123, fetchUser)
//
//	// Do other work...
//
//	user, err := future.Await()
//
// Settling a future by hand:
//
//	future, resolve, reject := async.NewPromise[User]()
//	go func() {
//		user, err := load()
//		if err != nil {
//			reject(err)
//			return
//		}
//		resolve(user)
//	}()
//
// Using timeout:
//
//	user, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("Operation timed out")
//	}
//
// # Coordination Utilities
//
// WaitAll waits for all futures to complete and returns their results in input order.
// WaitAny returns as soon as any future completes.
//
// # Error Handling
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrNoFutures: returned when WaitAny is called with no futures
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. A Future settles exactly once; later
// settlement attempts are ignored.
package async
