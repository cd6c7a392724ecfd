// Package rx provides lazy, push-based streams with cooperative cancellation.
//
// The core type is Observable, a cold description of a computation that
// produces values. Nothing runs until Subscribe is called, and every
// subscription runs the producer again from the start.
//
// # Immediate and Deferred Streams
//
// An Observable carries exactly one TeardownLogic:
//
//   - Immediate: the producer runs on the subscribing goroutine and has
//     finished by the time Subscribe returns.
//   - Deferred: the producer returns a Computation that one dedicated
//     worker goroutine drives to completion, polling and yielding the
//     processor between attempts.
//
// Operators such as Map keep the variant of their source.
//
// # Subscriptions
//
// Subscribe wires three callbacks to a gated Observer and returns a
// Subscription:
//
//	sub := stream.Subscribe(
//	    func(v string) { fmt.Println(v) },
//	    func(err error) { log.Printf("stream failed: %v", err) },
//	    func() { fmt.Println("done") },
//	)
//	defer sub.Close()
//
// Cancellation is cooperative. Unsubscribe clears a shared liveness flag so
// that no callback fires afterwards, but a producer that never checks
// Observer.Active keeps running until it returns by itself:
//
//   - Unsubscribe: stop callbacks, do not block
//   - UnsubscribeAndWait: stop callbacks and wait for the worker
//   - Join: wait for the worker and let the stream finish naturally
//   - Detach: release the worker without waiting
//   - Close: Unsubscribe and Detach; also done automatically when a handle
//     is garbage collected
//
// # Signals
//
// Subscription and worker lifecycle events are emitted through capitan:
//
//	capitan.Hook(rx.WorkerPanicked, func(_ context.Context, e *capitan.Event) {
//	    msg, _ := rx.KeyPanic.From(e)
//	    log.Printf("worker panicked: %s", msg)
//	})
//
// # Example
//
//	messages := rx.Spawn(func(o rx.Observer[string]) error {
//	    for i := 0; o.Active(); i++ {
//	        o.Next(fmt.Sprintf("msg %d", i))
//	        time.Sleep(50 * time.Millisecond)
//	    }
//	    return nil
//	})
//
//	upper := rx.Map(messages, strings.ToUpper)
//	sub := upper.Subscribe(func(s string) { fmt.Println(s) }, nil, nil)
//	time.Sleep(time.Second)
//	_ = sub.UnsubscribeAndWait()
package rx
