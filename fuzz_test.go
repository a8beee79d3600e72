package lazy_test

import (
	"testing"

	lazy "github.com/shortlink-org/go-lazy"
)

// FuzzEvaluated checks the eager-construction invariant: a thunk built from
// a value returns that value on every force and never runs deferred work.
func FuzzEvaluated(f *testing.F) {
	f.Add("seven")
	f.Add("")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, value string) {
		thunk := lazy.Evaluated(value)

		for i := 0; i < 3; i++ {
			if got := *thunk.Force(); got != value {
				t.Errorf("Force() = %q, want %q", got, value)
			}
		}
	})
}

// FuzzForceOnce checks the evaluate-once and idempotent-value invariants for
// arbitrary inputs and force counts.
func FuzzForceOnce(f *testing.F) {
	f.Add(int64(7), uint8(1))
	f.Add(int64(-1), uint8(5))
	f.Add(int64(0), uint8(255))

	f.Fuzz(func(t *testing.T, seed int64, forces uint8) {
		runs := 0
		thunk := lazy.New(func() int64 {
			runs++
			return seed * 2
		})

		n := int(forces%8) + 1
		first := *thunk.Force()

		for i := 0; i < n; i++ {
			if got := *thunk.Force(); got != first {
				t.Errorf("Force() = %d, want %d on every call", got, first)
			}
		}

		if runs != 1 {
			t.Errorf("computation ran %d times, want exactly 1", runs)
		}
	})
}
