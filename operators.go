package rx

import "sync/atomic"

// Filter returns an Observable that only forwards values for which
// predicate returns true.
func Filter[V any](source Observable[V], predicate func(V) bool) Observable[V] {
	return Observable[V]{logic: lift(source.logic, func(o Observer[V]) Observer[V] {
		return withNext(o, func(v V) {
			if predicate(v) {
				o.next(v)
			}
		})
	})}
}

// TryMap is like Map for transformations that can fail. The first error
// becomes the terminal error of the subscription and later values are
// dropped.
func TryMap[V, U any](source Observable[V], fn func(V) (U, error)) Observable[U] {
	return Observable[U]{logic: lift(source.logic, func(o Observer[U]) Observer[V] {
		return withNext(o, func(v V) {
			if !o.Active() {
				return
			}
			u, err := fn(v)
			if err != nil {
				o.err(err)
				return
			}
			o.next(u)
		})
	})}
}

// Take returns an Observable that completes after forwarding the first n
// values of source. With n <= 0 the subscriber completes as soon as it
// subscribes.
func Take[V any](source Observable[V], n int) Observable[V] {
	return Observable[V]{logic: lift(source.logic, func(o Observer[V]) Observer[V] {
		if n <= 0 {
			o.complete()
		}
		var seen atomic.Int64
		return withNext(o, func(v V) {
			count := seen.Add(1)
			if count <= int64(n) {
				o.next(v)
			}
			if count >= int64(n) {
				o.complete()
			}
		})
	})}
}
