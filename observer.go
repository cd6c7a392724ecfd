package rx

import (
	"context"
	"sync/atomic"
)

// liveness is the flag shared between a Subscription and every copy of its
// Observer. Only the disposer clears it.
type liveness struct {
	flag   atomic.Bool
	cancel context.CancelFunc

	// canceled is closed on kill and when the subscription's work ends.
	canceled <-chan struct{}
}

func newLiveness(ctx context.Context, cancel context.CancelFunc) *liveness {
	l := &liveness{cancel: cancel, canceled: ctx.Done()}
	l.flag.Store(true)
	return l
}

func (l *liveness) alive() bool {
	return l.flag.Load()
}

// kill clears the flag and cancels the observer context. It reports whether
// this call performed the transition.
func (l *liveness) kill() bool {
	was := l.flag.Swap(false)
	l.cancel()
	return was
}

// Observer receives the values, error, and completion of one subscription.
//
// The callbacks held by an Observer are already gated: once the subscription
// is no longer active, or after the first terminal signal, every call is a
// no-op. Observers are cheap to copy and every copy shares the same state.
type Observer[V any] struct {
	next     func(V)
	err      func(error)
	complete func()

	live       *liveness
	terminated *atomic.Bool
	ctx        context.Context
}

// Next delivers a value.
func (o Observer[V]) Next(v V) {
	o.next(v)
}

// Error delivers the terminal error of the stream.
func (o Observer[V]) Error(err error) {
	o.err(err)
}

// Complete signals successful termination of the stream.
func (o Observer[V]) Complete() {
	o.complete()
}

// Active reports whether the subscription still accepts signals. Deferred
// producers should check it between emissions and return once it is false.
func (o Observer[V]) Active() bool {
	return o.live.alive() && !o.terminated.Load()
}

// Context returns a context that is canceled once the subscription is
// unsubscribed, disposed, or its work has finished. Producers that block
// can select on its Done channel instead of polling Active.
func (o Observer[V]) Context() context.Context {
	return o.ctx
}

// newObserver wraps the user callbacks so that each first checks liveness
// and the terminal latch. nil callbacks are accepted and ignored.
func newObserver[V any](
	ctx context.Context,
	live *liveness,
	next func(V),
	onError func(error),
	onComplete func(),
	hooks observerHooks,
) Observer[V] {
	terminated := new(atomic.Bool)
	return Observer[V]{
		next: func(v V) {
			if !live.alive() || terminated.Load() {
				return
			}
			if next != nil {
				next(v)
			}
		},
		err: func(err error) {
			if !live.alive() || !terminated.CompareAndSwap(false, true) {
				return
			}
			hooks.errored(err)
			if onError != nil {
				onError(err)
			}
		},
		complete: func() {
			if !live.alive() || !terminated.CompareAndSwap(false, true) {
				return
			}
			hooks.completed()
			if onComplete != nil {
				onComplete()
			}
		},
		live:       live,
		terminated: terminated,
		ctx:        ctx,
	}
}

// observerHooks are invoked by the engine when a terminal signal passes the
// gate, before the user callback runs.
type observerHooks struct {
	errored   func(error)
	completed func()
}

// withNext returns a copy of o whose Next is replaced by fn. Error,
// Complete, liveness and context are shared with o.
func withNext[V, U any](o Observer[U], fn func(V)) Observer[V] {
	return Observer[V]{
		next:       fn,
		err:        o.err,
		complete:   o.complete,
		live:       o.live,
		terminated: o.terminated,
		ctx:        o.ctx,
	}
}
