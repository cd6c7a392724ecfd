package rx

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key subscription events.
type MetricsProvider interface {
	// OnSubscribe is called for every Subscribe with the kind of the stream.
	OnSubscribe(kind Kind)

	// OnUnsubscribe is called when liveness of an active subscription is cleared.
	OnUnsubscribe()

	// OnWorkerExit is called when a worker finishes, with the number of
	// polls it performed and how long it ran.
	OnWorkerExit(polls int, duration time.Duration)

	// OnWorkerPanic is called when a worker recovers a panic.
	OnWorkerPanic()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnSubscribe(_ Kind)                  {}
func (NoOpMetricsProvider) OnUnsubscribe()                      {}
func (NoOpMetricsProvider) OnWorkerExit(_ int, _ time.Duration) {}
func (NoOpMetricsProvider) OnWorkerPanic()                      {}
