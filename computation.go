package rx

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Progress is the outcome of a single Poll.
type Progress int

const (
	// Pending means the computation has more work to do.
	Pending Progress = iota

	// Ready means the computation has finished.
	Ready
)

// String returns the string representation of the progress.
func (p Progress) String() string {
	switch p {
	case Pending:
		return "pending"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Computation is deferred work advanced by repeated calls to Poll.
//
// Poll is called from a single goroutine. It returns Ready once the work is
// done. A non-nil error finishes the computation regardless of the reported
// progress. Poll may block, in which case the worker simply waits for it.
type Computation interface {
	Poll() (Progress, error)
}

// PollFunc adapts a function to the Computation interface.
type PollFunc func() (Progress, error)

// Poll calls f.
func (f PollFunc) Poll() (Progress, error) {
	return f()
}

// Task returns a Computation that runs fn to completion on its first poll.
func Task(fn func() error) Computation {
	return PollFunc(func() (Progress, error) {
		return Ready, fn()
	})
}

// Resolved returns a Computation that is already finished with err.
func Resolved(err error) Computation {
	return PollFunc(func() (Progress, error) {
		return Ready, err
	})
}

// Delay returns a Computation that stays Pending until d has elapsed on
// clock. The timer starts on the first poll. A nil clock means real time.
func Delay(clock clockz.Clock, d time.Duration) Computation {
	if clock == nil {
		clock = clockz.RealClock
	}
	var timer clockz.Timer
	return PollFunc(func() (Progress, error) {
		if timer == nil {
			if d <= 0 {
				return Ready, nil
			}
			timer = clock.NewTimer(d)
		}
		select {
		case <-timer.C():
			return Ready, nil
		default:
			return Pending, nil
		}
	})
}

// Then runs first and, once it finishes without error, continues with the
// computation returned by next.
func Then(first Computation, next func() Computation) Computation {
	var second Computation
	return PollFunc(func() (Progress, error) {
		if second == nil {
			p, err := first.Poll()
			if err != nil {
				return Ready, err
			}
			if p != Ready {
				return Pending, nil
			}
			second = next()
			if second == nil {
				return Ready, nil
			}
		}
		return second.Poll()
	})
}
