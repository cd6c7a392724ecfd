package rx

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/zoobzio/capitan"
)

// PanicError is the exit result of a worker whose computation panicked.
// Panics are never converted into stream errors; they surface only here and
// on the WorkerPanicked signal.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the worker's stack at the time of the panic.
	Stack []byte
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("rx: worker panicked: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// driver advances a Computation until it finishes. There is no wake-up
// mechanism, so a Pending result yields the processor and polls again.
type driver struct {
	computation Computation
	polls       int
}

// run polls until Ready or an error.
func (d *driver) run() error {
	for {
		d.polls++
		progress, err := d.computation.Poll()
		if err != nil {
			return err
		}
		if progress == Ready {
			return nil
		}
		runtime.Gosched()
	}
}

// worker is the dedicated goroutine behind a deferred subscription.
type worker struct {
	done chan struct{}

	// err is written once before done is closed.
	err error
}

// spawnWorker starts a goroutine that drives computation. A computation
// error is passed to onError. finish runs after the computation has ended,
// panicking or not, and before done is closed.
func spawnWorker(core *subscriptionCore, computation Computation, onError func(error), finish func()) *worker {
	w := &worker{done: make(chan struct{})}
	d := &driver{computation: computation}

	capitan.Emit(core.emitCtx, WorkerStarted,
		KeyName.Field(core.name),
	)

	go func() {
		start := core.clock.Now()
		defer close(w.done)
		defer finish()
		defer func() {
			if r := recover(); r != nil {
				w.err = &PanicError{Value: r, Stack: debug.Stack()}
				core.metrics.OnWorkerPanic()
				capitan.Emit(core.emitCtx, WorkerPanicked,
					KeyName.Field(core.name),
					KeyPanic.Field(fmt.Sprint(r)),
				)
			}
			elapsed := core.clock.Since(start)
			core.metrics.OnWorkerExit(d.polls, elapsed)
			capitan.Emit(core.emitCtx, WorkerExited,
				KeyName.Field(core.name),
				KeyPolls.Field(d.polls),
				KeyDuration.Field(elapsed),
			)
		}()

		if err := d.run(); err != nil {
			onError(err)
		}
	}()

	return w
}
