package rx

import "github.com/zoobzio/capitan"

// Subscription lifecycle signals.
var (
	// SubscriptionStarted is emitted when Subscribe wires a new observer.
	SubscriptionStarted = capitan.NewSignal(
		"rx.subscription.started",
		"Subscription started",
	)

	// SubscriptionCompleted is emitted when the stream delivers completion.
	SubscriptionCompleted = capitan.NewSignal(
		"rx.subscription.completed",
		"Subscription completed",
	)

	// SubscriptionErrored is emitted when the stream delivers its terminal error.
	SubscriptionErrored = capitan.NewSignal(
		"rx.subscription.errored",
		"Subscription terminated with error",
	)

	// SubscriptionUnsubscribed is emitted when liveness is cleared by the
	// subscriber, by disposal, or by parent context cancellation.
	SubscriptionUnsubscribed = capitan.NewSignal(
		"rx.subscription.unsubscribed",
		"Subscription canceled",
	)
)

// Worker signals.
var (
	// WorkerStarted is emitted when a deferred subscription spawns its worker.
	WorkerStarted = capitan.NewSignal(
		"rx.worker.started",
		"Worker started",
	)

	// WorkerExited is emitted when a worker has driven its computation to the end.
	WorkerExited = capitan.NewSignal(
		"rx.worker.exited",
		"Worker exited",
	)

	// WorkerPanicked is emitted when a worker recovers a panic.
	WorkerPanicked = capitan.NewSignal(
		"rx.worker.panicked",
		"Worker panicked",
	)
)
