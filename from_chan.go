package rx

// FromChan returns a deferred Observable that forwards every value received
// from ch and completes when ch is closed. Receiving stops as soon as the
// subscription is no longer active; values left in ch stay there.
//
// Because a channel can only be drained once, every subscription competes
// for the same values.
func FromChan[V any](ch <-chan V) Observable[V] {
	return Spawn(func(o Observer[V]) error {
		done := o.Context().Done()
		for o.Active() {
			select {
			case <-done:
				return nil
			case v, ok := <-ch:
				if !ok {
					o.Complete()
					return nil
				}
				o.Next(v)
			}
		}
		return nil
	})
}
