package rx

// Map returns an Observable that applies fn to every value of source.
//
// Nothing runs until the result is subscribed. Error, completion and
// liveness pass through unchanged, and the result has the same Kind as
// source. A panic in fn is not turned into a stream error.
//
// Example:
//
//	doubled := rx.Map(numbers, func(n int) int { return n * 2 })
func Map[V, U any](source Observable[V], fn func(V) U) Observable[U] {
	return Observable[U]{logic: lift(source.logic, func(o Observer[U]) Observer[V] {
		return withNext(o, func(v V) {
			o.next(fn(v))
		})
	})}
}
