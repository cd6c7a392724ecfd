package rx_test

import (
	"strconv"
	"testing"

	"github.com/zoobzio/rx"
	rxtest "github.com/zoobzio/rx/testing"
)

func numbers(values ...int) rx.Observable[int] {
	return rx.Spawn(func(o rx.Observer[int]) error {
		for _, v := range values {
			if !o.Active() {
				return nil
			}
			o.Next(v)
		}
		o.Complete()
		return nil
	})
}

func TestMap_PreservesKind(t *testing.T) {
	double := func(x int) int { return x * 2 }

	if k := rx.Map(rx.Of(1), double).Kind(); k != rx.KindImmediate {
		t.Errorf("expected immediate, got %s", k)
	}
	if k := rx.Map(numbers(1), double).Kind(); k != rx.KindDeferred {
		t.Errorf("expected deferred, got %s", k)
	}
}

func TestMap_Deferred(t *testing.T) {
	r := rxtest.NewRecorder[string]()
	sub := r.Subscribe(rx.Map(numbers(1, 2, 3), strconv.Itoa))

	if sub.State() != rx.StateBackground {
		t.Fatalf("expected background subscription, got %s", sub.State())
	}
	if err := sub.Join(); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	rxtest.RequireValues(t, r, "1", "2", "3")
	if r.Completions() != 1 {
		t.Errorf("expected 1 completion, got %d", r.Completions())
	}
}

func TestMap_Composition(t *testing.T) {
	f := func(x int) int { return x + 1 }
	g := func(x int) string { return strconv.Itoa(x * 10) }

	chained := rxtest.NewRecorder[string]()
	chained.Subscribe(rx.Map(rx.Map(rx.Of(1, 2, 3), f), g))

	fused := rxtest.NewRecorder[string]()
	fused.Subscribe(rx.Map(rx.Of(1, 2, 3), func(x int) string { return g(f(x)) }))

	rxtest.RequireValues(t, chained, fused.Values()...)
	if chained.Completions() != fused.Completions() {
		t.Errorf("expected matching completions, got %d and %d", chained.Completions(), fused.Completions())
	}
}

func TestMap_Identity(t *testing.T) {
	r := rxtest.NewRecorder[int]()
	r.Subscribe(rx.Map(rx.Of(4, 5), func(x int) int { return x }))

	rxtest.RequireValues(t, r, 4, 5)
}

func TestMap_ForwardsError(t *testing.T) {
	source := rx.Spawn(func(o rx.Observer[int]) error {
		o.Next(1)
		return strconv.ErrSyntax
	})

	r := rxtest.NewRecorder[int]()
	if err := r.Subscribe(rx.Map(source, func(x int) int { return -x })).Join(); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	rxtest.RequireValues(t, r, -1)
	if errs := r.Errors(); len(errs) != 1 || errs[0] != strconv.ErrSyntax {
		t.Errorf("expected [ErrSyntax], got %v", errs)
	}
}

func TestMap_LazyMapper(t *testing.T) {
	calls := 0
	mapped := rx.Map(rx.Of(1, 2), func(x int) int {
		calls++
		return x
	})
	if calls != 0 {
		t.Fatalf("expected mapper not to run before subscribe, got %d calls", calls)
	}

	mapped.Subscribe(nil, nil, nil)
	mapped.Subscribe(nil, nil, nil)
	if calls != 4 {
		t.Errorf("expected 4 calls across two subscriptions, got %d", calls)
	}
}
