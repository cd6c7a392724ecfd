package rx

// Kind identifies the TeardownLogic variant of an Observable.
type Kind int32

const (
	// KindImmediate streams run to completion on the subscribing goroutine.
	KindImmediate Kind = iota

	// KindDeferred streams run on a dedicated worker per subscription.
	KindDeferred
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindImmediate:
		return "immediate"
	case KindDeferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// State represents the state of a Subscription.
type State int32

const (
	// StateReady indicates the subscription finished synchronously and owns
	// no resources.
	StateReady State = iota

	// StateBackground indicates the subscription is backed by a worker that
	// may still be running.
	StateBackground
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateBackground:
		return "background"
	default:
		return "unknown"
	}
}
