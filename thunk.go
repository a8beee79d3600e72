package lazy

// state tracks where a thunk is in its lifecycle. Transitions are
// one-directional: unevaluated -> evaluating -> evaluated, never reversed
// and never revisited.
type state uint8

const (
	stateUnevaluated state = iota
	stateEvaluating
	stateEvaluated
)

// panicReentrantForce is the message used when a computation forces the
// very thunk it is producing the value for.
const panicReentrantForce = "lazy: Force called during evaluation"

// Thunk is a deferred computation evaluated at most once, with the result
// cached for all subsequent reads.
//
// A Thunk holds either a pending computation or a computed value, never
// both. Force runs the computation on first call and returns the cached
// value on every later call. The zero value is not usable; construct a
// Thunk with New, FromEvaluator or Evaluated.
//
// A Thunk is not safe for concurrent use.
type Thunk[T any] struct {
	state state
	doer  Evaluator[T] // set while unevaluated, nil afterwards
	value T            // set once evaluated, final
}

// New creates an unevaluated thunk from a computation. The computation is
// not invoked until the first Force.
func New[T any](doer func() T) *Thunk[T] {
	return &Thunk[T]{state: stateUnevaluated, doer: Func[T](doer)}
}

// Evaluated creates a thunk that already holds its final value. No deferred
// work is stored and Force never runs anything.
func Evaluated[T any](value T) *Thunk[T] {
	return &Thunk[T]{state: stateEvaluated, value: value}
}

// Force returns the thunk's value, evaluating the stored computation if it
// has not run yet. The returned pointer refers to the single value stored
// inside the thunk: every call yields the same pointer, valid as long as
// the thunk itself is alive.
//
// Force panics if called from inside the thunk's own computation, since no
// value exists yet and fabricating one would break the evaluate-once
// contract. A panic inside the computation propagates to the caller exactly
// as if the computation had been called inline; the thunk is then stuck
// mid-evaluation and any later Force panics as well.
func (t *Thunk[T]) Force() *T {
	switch t.state {
	case stateEvaluated:
		return &t.value
	case stateEvaluating:
		panic(panicReentrantForce)
	}

	doer := t.doer
	t.doer = nil // release the computation and anything it captured
	t.state = stateEvaluating
	t.value = doer.Evaluate()
	t.state = stateEvaluated

	return &t.value
}

// Unwrap forces the thunk and returns a copy of its value.
func (t *Thunk[T]) Unwrap() T {
	return *t.Force()
}
