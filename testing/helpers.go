// Package testing provides test utilities and helpers for rx streams.
package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/rx"
)

// Recorder collects the notifications of a subscription. Its Next, Error and
// Complete methods can be passed straight to Subscribe and are safe to call
// from any goroutine.
type Recorder[V any] struct {
	mu            sync.Mutex
	notifications []rx.Notification[V]
	signal        chan struct{}
}

// NewRecorder creates an empty Recorder.
func NewRecorder[V any]() *Recorder[V] {
	return &Recorder[V]{signal: make(chan struct{}, 1)}
}

func (r *Recorder[V]) record(n rx.Notification[V]) {
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()

	select {
	case r.signal <- struct{}{}:
	default:
	}
}

// Next records a value.
func (r *Recorder[V]) Next(v V) {
	r.record(rx.Notification[V]{Kind: rx.OnNext, Value: v})
}

// Error records an error.
func (r *Recorder[V]) Error(err error) {
	r.record(rx.Notification[V]{Kind: rx.OnError, Err: err})
}

// Complete records a completion.
func (r *Recorder[V]) Complete() {
	r.record(rx.Notification[V]{Kind: rx.OnComplete})
}

// Subscribe subscribes r to source.
func (r *Recorder[V]) Subscribe(source rx.Observable[V], opts ...rx.Option) *rx.Subscription {
	return source.Subscribe(r.Next, r.Error, r.Complete, opts...)
}

// Notifications returns a copy of everything recorded so far, in order.
func (r *Recorder[V]) Notifications() []rx.Notification[V] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]rx.Notification[V], len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Values returns the recorded values in order.
func (r *Recorder[V]) Values() []V {
	var out []V
	for _, n := range r.Notifications() {
		if n.Kind == rx.OnNext {
			out = append(out, n.Value)
		}
	}
	return out
}

// Errors returns the recorded errors in order.
func (r *Recorder[V]) Errors() []error {
	var out []error
	for _, n := range r.Notifications() {
		if n.Kind == rx.OnError {
			out = append(out, n.Err)
		}
	}
	return out
}

// Completions returns how many completions were recorded.
func (r *Recorder[V]) Completions() int {
	count := 0
	for _, n := range r.Notifications() {
		if n.Kind == rx.OnComplete {
			count++
		}
	}
	return count
}

// Len returns the number of recorded notifications.
func (r *Recorder[V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

// WaitForLen waits until at least n notifications are recorded or timeout
// is reached. Returns true if the count was reached.
func (r *Recorder[V]) WaitForLen(t *testing.T, n int, timeout time.Duration) bool {
	t.Helper()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for r.Len() < n {
		select {
		case <-r.signal:
		case <-deadline.C:
			return r.Len() >= n
		}
	}
	return true
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// RequireNoNotification fails the test if anything arrives on ch within d.
func RequireNoNotification[T any](t *testing.T, ch <-chan T, d time.Duration) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("expected no notification within %s, got %+v", d, v)
		}
	case <-time.After(d):
	}
}

// RequireValues fails the test if the recorded values differ from want.
func RequireValues[V comparable](t *testing.T, r *Recorder[V], want ...V) {
	t.Helper()
	got := r.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %d values %v, got %d values %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
