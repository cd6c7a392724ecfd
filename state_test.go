package rx

import "testing"

func TestKind_String_Immediate(t *testing.T) {
	if s := KindImmediate.String(); s != "immediate" {
		t.Errorf("expected 'immediate', got %q", s)
	}
}

func TestKind_String_Deferred(t *testing.T) {
	if s := KindDeferred.String(); s != "deferred" {
		t.Errorf("expected 'deferred', got %q", s)
	}
}

func TestKind_String_Unknown(t *testing.T) {
	unknown := Kind(999)
	if s := unknown.String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestState_String_Ready(t *testing.T) {
	if s := StateReady.String(); s != "ready" {
		t.Errorf("expected 'ready', got %q", s)
	}
}

func TestState_String_Background(t *testing.T) {
	if s := StateBackground.String(); s != "background" {
		t.Errorf("expected 'background', got %q", s)
	}
}

func TestState_String_Unknown(t *testing.T) {
	unknown := State(999)
	if s := unknown.String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestState_Values(t *testing.T) {
	// Verify iota ordering
	if StateReady != 0 {
		t.Errorf("expected StateReady=0, got %d", StateReady)
	}
	if StateBackground != 1 {
		t.Errorf("expected StateBackground=1, got %d", StateBackground)
	}
}

func TestProgress_String(t *testing.T) {
	if s := Pending.String(); s != "pending" {
		t.Errorf("expected 'pending', got %q", s)
	}
	if s := Ready.String(); s != "ready" {
		t.Errorf("expected 'ready', got %q", s)
	}
	if s := Progress(42).String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}
