package rx

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// subscriptionCore is the state shared by a Subscription, its Observer and
// its worker. It never references the Subscription itself, so a discarded
// handle can be reclaimed while the worker is still running.
type subscriptionCore struct {
	name    string
	kind    Kind
	emitCtx context.Context
	metrics MetricsProvider
	clock   clockz.Clock
	live    *liveness

	// finished is set once a terminal signal was delivered or the worker
	// exited.
	finished atomic.Bool
}

// unsubscribe clears liveness. Signals are only emitted for the call that
// performs the transition, and not at all once the work has ended.
func (c *subscriptionCore) unsubscribe() {
	if !c.live.kill() || c.finished.Load() {
		return
	}
	c.metrics.OnUnsubscribe()
	capitan.Emit(c.emitCtx, SubscriptionUnsubscribed,
		KeyName.Field(c.name),
	)
}

func (c *subscriptionCore) hooks() observerHooks {
	return observerHooks{
		errored: func(err error) {
			c.finished.Store(true)
			capitan.Emit(c.emitCtx, SubscriptionErrored,
				KeyName.Field(c.name),
				KeyError.Field(err.Error()),
			)
		},
		completed: func() {
			c.finished.Store(true)
			capitan.Emit(c.emitCtx, SubscriptionCompleted,
				KeyName.Field(c.name),
			)
		},
	}
}

// dispose is what happens to a background subscription whose handle is
// dropped: liveness is cleared and the worker is left to exit on its own.
func dispose(c *subscriptionCore) {
	c.unsubscribe()
}

// closedChan is returned by Done for subscriptions without a worker.
var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Subscription is the handle returned by Subscribe.
//
// A StateReady subscription finished before Subscribe returned and owns no
// resources; every method on it is a no-op. A StateBackground subscription
// is backed by a worker goroutine.
//
// Dropping a background handle without calling any method behaves like
// Close: once the handle is unreachable its liveness is cleared and no
// further callback fires. Call Close for deterministic disposal.
type Subscription struct {
	state  State
	core   *subscriptionCore
	worker atomic.Pointer[worker]
	done   <-chan struct{}

	cleanup runtime.Cleanup
}

func newReadySubscription(core *subscriptionCore) *Subscription {
	return &Subscription{state: StateReady, core: core, done: closedChan}
}

func newBackgroundSubscription(core *subscriptionCore, w *worker) *Subscription {
	s := &Subscription{state: StateBackground, core: core, done: w.done}
	s.worker.Store(w)
	s.cleanup = runtime.AddCleanup(s, dispose, core)
	return s
}

// State returns StateReady or StateBackground.
func (s *Subscription) State() State {
	return s.state
}

// Active reports whether callbacks may still fire. It is false for a ready
// subscription and once the stream has terminated or its worker exited.
func (s *Subscription) Active() bool {
	if s.state == StateReady {
		return false
	}
	return s.core.live.alive() && !s.core.finished.Load()
}

// Done returns a channel that is closed once the worker has exited. For a
// ready subscription the channel is already closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Unsubscribe stops further callbacks immediately without blocking. The
// worker may keep running until its producer notices.
func (s *Subscription) Unsubscribe() {
	if s.state == StateReady {
		return
	}
	s.core.unsubscribe()
}

// UnsubscribeAndWait stops further callbacks and blocks until the worker has
// exited, returning the worker's exit result.
func (s *Subscription) UnsubscribeAndWait() error {
	s.Unsubscribe()
	return s.Join()
}

// Join blocks until the worker exits without clearing liveness, so the
// stream can finish naturally. It returns a *PanicError if the worker
// panicked. Join takes ownership of the exited worker: of several joins
// only one reports the exit result, and joins after Detach return nil
// immediately.
func (s *Subscription) Join() error {
	w := s.worker.Load()
	if w == nil {
		return nil
	}
	<-w.done
	return s.release(w)
}

// JoinContext is like Join but gives up when ctx is done, returning
// ctx.Err(). The subscription keeps ownership of the worker in that case.
func (s *Subscription) JoinContext(ctx context.Context) error {
	w := s.worker.Load()
	if w == nil {
		return nil
	}
	select {
	case <-w.done:
		return s.release(w)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release takes ownership of an exited worker and reports its result.
// The handle needs no disposal afterwards.
func (s *Subscription) release(w *worker) error {
	if !s.worker.CompareAndSwap(w, nil) {
		return nil
	}
	s.cleanup.Stop()
	return w.err
}

// Detach releases ownership of the worker without blocking. The worker exits
// by itself once its computation finishes; its exit result is no longer
// reported through Join.
func (s *Subscription) Detach() {
	s.worker.Store(nil)
}

// Close unsubscribes and detaches. It never blocks and always returns nil.
func (s *Subscription) Close() error {
	if s.state == StateReady {
		return nil
	}
	s.cleanup.Stop()
	s.Unsubscribe()
	s.Detach()
	return nil
}
