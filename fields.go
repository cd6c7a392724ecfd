package rx

import "github.com/zoobzio/capitan"

// Field keys for subscription events.
var (
	// KeyName is the subscription name set with WithName.
	KeyName = capitan.NewStringKey("name")

	// KeyKind is the kind of the subscribed stream.
	KeyKind = capitan.NewStringKey("kind")

	// KeyError is the error message of a failed stream.
	KeyError = capitan.NewStringKey("error")

	// KeyPanic is the formatted value recovered from a worker panic.
	KeyPanic = capitan.NewStringKey("panic")

	// KeyPolls is the number of polls a worker performed.
	KeyPolls = capitan.NewIntKey("polls")

	// KeyDuration is how long a worker ran.
	KeyDuration = capitan.NewDurationKey("duration")
)
