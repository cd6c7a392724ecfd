package rx

// NotificationKind identifies the signal carried by a Notification.
type NotificationKind string

const (
	// OnNext carries a value.
	OnNext NotificationKind = "next"
	// OnError carries the terminal error.
	OnError NotificationKind = "error"
	// OnComplete marks successful termination.
	OnComplete NotificationKind = "complete"
)

// Notification is one signal of a stream as a value.
type Notification[V any] struct {
	Kind  NotificationKind
	Value V
	Err   error
}

// Terminal reports whether the notification ends the stream.
func (n Notification[V]) Terminal() bool {
	return n.Kind == OnError || n.Kind == OnComplete
}
