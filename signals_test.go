package rx

import "testing"

func TestSubscriptionStarted(t *testing.T) {
	if SubscriptionStarted.Name() != "rx.subscription.started" {
		t.Errorf("expected name 'rx.subscription.started', got %q", SubscriptionStarted.Name())
	}
}

func TestSubscriptionCompleted(t *testing.T) {
	if SubscriptionCompleted.Name() != "rx.subscription.completed" {
		t.Errorf("expected name 'rx.subscription.completed', got %q", SubscriptionCompleted.Name())
	}
}

func TestSubscriptionErrored(t *testing.T) {
	if SubscriptionErrored.Name() != "rx.subscription.errored" {
		t.Errorf("expected name 'rx.subscription.errored', got %q", SubscriptionErrored.Name())
	}
}

func TestSubscriptionUnsubscribed(t *testing.T) {
	if SubscriptionUnsubscribed.Name() != "rx.subscription.unsubscribed" {
		t.Errorf("expected name 'rx.subscription.unsubscribed', got %q", SubscriptionUnsubscribed.Name())
	}
}

func TestWorkerStarted(t *testing.T) {
	if WorkerStarted.Name() != "rx.worker.started" {
		t.Errorf("expected name 'rx.worker.started', got %q", WorkerStarted.Name())
	}
}

func TestWorkerExited(t *testing.T) {
	if WorkerExited.Name() != "rx.worker.exited" {
		t.Errorf("expected name 'rx.worker.exited', got %q", WorkerExited.Name())
	}
}

func TestWorkerPanicked(t *testing.T) {
	if WorkerPanicked.Name() != "rx.worker.panicked" {
		t.Errorf("expected name 'rx.worker.panicked', got %q", WorkerPanicked.Name())
	}
}
