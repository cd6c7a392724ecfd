package rx

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Of returns an immediate Observable that emits values in order and completes.
func Of[V any](values ...V) Observable[V] {
	return New(func(o *Observer[V]) error {
		for _, v := range values {
			o.Next(v)
		}
		o.Complete()
		return nil
	})
}

// Empty returns an immediate Observable that completes without emitting.
func Empty[V any]() Observable[V] {
	return New(func(o *Observer[V]) error {
		o.Complete()
		return nil
	})
}

// Fail returns an immediate Observable that terminates with err.
func Fail[V any](err error) Observable[V] {
	return New(func(_ *Observer[V]) error {
		return err
	})
}

// Interval returns a deferred Observable that emits 0, 1, 2, ... once every
// period for as long as the subscription is active. It never completes on
// its own. A nil clock means real time.
func Interval(clock clockz.Clock, period time.Duration) Observable[int] {
	if clock == nil {
		clock = clockz.RealClock
	}
	return Spawn(func(o Observer[int]) error {
		done := o.Context().Done()
		for i := 0; o.Active(); i++ {
			timer := clock.NewTimer(period)
			select {
			case <-done:
				timer.Stop()
				return nil
			case <-timer.C():
			}
			o.Next(i)
		}
		return nil
	})
}
