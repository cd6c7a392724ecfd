package rx

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Observable is a lazy, cold stream of values. Building an Observable never
// runs producer code; each Subscribe runs the TeardownLogic again from the
// start, independently of any other subscription.
//
// The zero Observable never emits and subscribing to it returns a ready
// Subscription.
type Observable[V any] struct {
	logic TeardownLogic[V]
}

// New creates an immediate Observable. fn runs on the subscribing goroutine
// and must emit zero or more values followed by exactly one Complete, or
// return an error which is forwarded to the error callback.
//
// Example:
//
//	numbers := rx.New(func(o *rx.Observer[int]) error {
//	    o.Next(1)
//	    o.Next(2)
//	    o.Complete()
//	    return nil
//	})
func New[V any](fn func(*Observer[V]) error) Observable[V] {
	return Observable[V]{logic: Immediate[V](fn)}
}

// NewDeferred creates a deferred Observable. For every subscription fn is
// called with the Observer and the returned Computation is driven to
// completion on a dedicated worker goroutine. Producers are expected to
// check Observer.Active between emissions and stop once it is false.
func NewDeferred[V any](fn func(Observer[V]) Computation) Observable[V] {
	return Observable[V]{logic: Deferred[V](fn)}
}

// Spawn creates a deferred Observable whose producer runs entirely on the
// worker goroutine.
//
// Example:
//
//	ticks := rx.Spawn(func(o rx.Observer[string]) error {
//	    for i := 0; o.Active(); i++ {
//	        o.Next(fmt.Sprintf("msg %d", i))
//	        time.Sleep(50 * time.Millisecond)
//	    }
//	    return nil
//	})
func Spawn[V any](fn func(Observer[V]) error) Observable[V] {
	return NewDeferred(func(o Observer[V]) Computation {
		return Task(func() error {
			return fn(o)
		})
	})
}

// FromLogic wraps an existing TeardownLogic.
func FromLogic[V any](logic TeardownLogic[V]) Observable[V] {
	return Observable[V]{logic: logic}
}

// Kind reports whether the Observable is immediate or deferred.
func (o Observable[V]) Kind() Kind {
	if o.logic == nil {
		return KindImmediate
	}
	return o.logic.Kind()
}

// Subscribe runs the stream for a new subscriber. Any callback may be nil.
//
// Immediate streams have finished by the time Subscribe returns and the
// result is a ready Subscription. Deferred streams get one worker goroutine
// and the result is a background Subscription controlling it.
//
// A producer error is always forwarded to onError. A panic in an immediate
// producer propagates to the caller; a panic on a worker ends that worker
// and is reported by Join.
func (o Observable[V]) Subscribe(next func(V), onError func(error), onComplete func(), opts ...Option) *Subscription {
	cfg := newConfig(opts)
	kind := o.Kind()

	ctx, cancel := context.WithCancel(cfg.ctx)
	core := &subscriptionCore{
		name:    cfg.name,
		kind:    kind,
		emitCtx: context.WithoutCancel(cfg.ctx),
		metrics: cfg.metrics,
		clock:   cfg.clock,
		live:    newLiveness(ctx, cancel),
	}

	cfg.metrics.OnSubscribe(kind)
	capitan.Emit(core.emitCtx, SubscriptionStarted,
		KeyName.Field(core.name),
		KeyKind.Field(kind.String()),
	)

	// A parent that is already done clears liveness before producer code runs.
	if cfg.ctx.Err() != nil {
		core.unsubscribe()
	}
	stop := context.AfterFunc(cfg.ctx, core.unsubscribe)
	observer := newObserver(ctx, core.live, next, onError, onComplete, core.hooks())

	switch l := o.logic.(type) {
	case Immediate[V]:
		defer cancel()
		defer stop()
		if err := l(&observer); err != nil {
			observer.Error(err)
		}
		return newReadySubscription(core)

	case Deferred[V]:
		spawned := false
		defer func() {
			if !spawned {
				stop()
				cancel()
			}
		}()

		errorSink := observer
		computation := l(observer)
		if computation == nil {
			computation = Resolved(nil)
		}
		w := spawnWorker(core, computation, errorSink.Error, func() {
			core.finished.Store(true)
			stop()
			cancel()
		})
		spawned = true
		return newBackgroundSubscription(core, w)

	default:
		stop()
		cancel()
		return newReadySubscription(core)
	}
}
