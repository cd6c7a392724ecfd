package rx

import (
	"testing"
	"time"
)

func TestKeyName(t *testing.T) {
	field := KeyName.Field("ticks")
	if field.Key().Name() != "name" {
		t.Errorf("expected key 'name', got %q", field.Key().Name())
	}
}

func TestKeyKind(t *testing.T) {
	field := KeyKind.Field(KindDeferred.String())
	if field.Key().Name() != "kind" {
		t.Errorf("expected key 'kind', got %q", field.Key().Name())
	}
}

func TestKeyError(t *testing.T) {
	field := KeyError.Field("something went wrong")
	if field.Key().Name() != "error" {
		t.Errorf("expected key 'error', got %q", field.Key().Name())
	}
}

func TestKeyPanic(t *testing.T) {
	field := KeyPanic.Field("boom")
	if field.Key().Name() != "panic" {
		t.Errorf("expected key 'panic', got %q", field.Key().Name())
	}
}

func TestKeyPolls(t *testing.T) {
	field := KeyPolls.Field(3)
	if field.Key().Name() != "polls" {
		t.Errorf("expected key 'polls', got %q", field.Key().Name())
	}
}

func TestKeyDuration(t *testing.T) {
	field := KeyDuration.Field(100 * time.Millisecond)
	if field.Key().Name() != "duration" {
		t.Errorf("expected key 'duration', got %q", field.Key().Name())
	}
}
