package rx

// TeardownLogic describes how a stream produces values. It is a closed set
// with exactly two implementations, Immediate and Deferred.
type TeardownLogic[V any] interface {
	// Kind reports which variant this is.
	Kind() Kind

	teardown()
}

// Immediate produces every value on the subscribing goroutine and returns
// only after it has finished emitting. A returned error is forwarded to the
// subscriber's error callback.
type Immediate[V any] func(*Observer[V]) error

// Kind returns KindImmediate.
func (Immediate[V]) Kind() Kind { return KindImmediate }

func (Immediate[V]) teardown() {}

// Deferred takes ownership of an Observer and returns a Computation that a
// dedicated worker drives to completion. A Computation that finishes with an
// error has that error forwarded to the subscriber's error callback.
type Deferred[V any] func(Observer[V]) Computation

// Kind returns KindDeferred.
func (Deferred[V]) Kind() Kind { return KindDeferred }

func (Deferred[V]) teardown() {}

// lift rewrites logic so that subscribers of the result see values through
// wrap. The variant of the source is preserved and nothing runs until the
// result is subscribed.
func lift[V, U any](logic TeardownLogic[V], wrap func(Observer[U]) Observer[V]) TeardownLogic[U] {
	switch l := logic.(type) {
	case Immediate[V]:
		return Immediate[U](func(o *Observer[U]) error {
			inner := wrap(*o)
			return l(&inner)
		})
	case Deferred[V]:
		return Deferred[U](func(o Observer[U]) Computation {
			return l(wrap(o))
		})
	default:
		return nil
	}
}
