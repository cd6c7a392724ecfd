package rx_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/zoobzio/rx"
	rxtest "github.com/zoobzio/rx/testing"
)

func TestFilter(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	t.Run("immediate", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.Filter(rx.Of(1, 2, 3, 4), even))

		rxtest.RequireValues(t, r, 2, 4)
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})

	t.Run("deferred", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		if err := r.Subscribe(rx.Filter(numbers(1, 2, 3, 4, 5, 6), even)).Join(); err != nil {
			t.Fatalf("Join failed: %v", err)
		}

		rxtest.RequireValues(t, r, 2, 4, 6)
	})

	t.Run("nothing passes", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.Filter(rx.Of(1, 3), even))

		if len(r.Values()) != 0 {
			t.Errorf("expected no values, got %v", r.Values())
		}
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})
}

func TestTryMap(t *testing.T) {
	t.Run("all succeed", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.TryMap(rx.Of("1", "2"), strconv.Atoi))

		rxtest.RequireValues(t, r, 1, 2)
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})

	t.Run("first failure terminates", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.TryMap(rx.Of("1", "x", "3"), strconv.Atoi))

		rxtest.RequireValues(t, r, 1)
		errs := r.Errors()
		if len(errs) != 1 || !errors.Is(errs[0], strconv.ErrSyntax) {
			t.Fatalf("expected one syntax error, got %v", errs)
		}
		if r.Completions() != 0 {
			t.Errorf("expected no completion after error, got %d", r.Completions())
		}
	})

	t.Run("mapper not called after failure", func(t *testing.T) {
		calls := 0
		fn := func(s string) (int, error) {
			calls++
			return strconv.Atoi(s)
		}
		rx.TryMap(rx.Of("x", "1", "2"), fn).Subscribe(nil, nil, nil)

		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})
}

func TestTake(t *testing.T) {
	t.Run("immediate", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.Take(rx.Of(1, 2, 3, 4), 2))

		rxtest.RequireValues(t, r, 1, 2)
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})

	t.Run("stops deferred producer", func(t *testing.T) {
		r := rxtest.NewRecorder[string]()
		sub := r.Subscribe(rx.Take(messages(0), 3))
		if err := sub.Join(); err != nil {
			t.Fatalf("Join failed: %v", err)
		}

		rxtest.RequireValues(t, r, "msg 0", "msg 1", "msg 2")
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})

	t.Run("fewer values than n", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.Take(rx.Of(1), 5))

		rxtest.RequireValues(t, r, 1)
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})

	t.Run("zero", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.Take(rx.Of(1, 2), 0))

		if len(r.Values()) != 0 {
			t.Errorf("expected no values, got %v", r.Values())
		}
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})
}

func TestSources(t *testing.T) {
	t.Run("of", func(t *testing.T) {
		r := rxtest.NewRecorder[string]()
		r.Subscribe(rx.Of("a", "b"))

		rxtest.RequireValues(t, r, "a", "b")
		if r.Completions() != 1 {
			t.Errorf("expected 1 completion, got %d", r.Completions())
		}
	})

	t.Run("empty", func(t *testing.T) {
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.Empty[int]())

		if r.Len() != 1 || r.Completions() != 1 {
			t.Errorf("expected only a completion, got %v", r.Notifications())
		}
	})

	t.Run("fail", func(t *testing.T) {
		boom := errors.New("boom")
		r := rxtest.NewRecorder[int]()
		r.Subscribe(rx.Fail[int](boom))

		if errs := r.Errors(); len(errs) != 1 || !errors.Is(errs[0], boom) {
			t.Errorf("expected [boom], got %v", errs)
		}
	})
}
