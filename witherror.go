package lazy

// WithError is the fallible counterpart of Thunk: it wraps a computation
// returning (T, error) and remembers both outputs of the single run. An
// error outcome is cached like a value outcome; the computation is never
// retried.
//
// A WithError is not safe for concurrent use.
type WithError[T any] struct {
	state state
	doer  func() (T, error)
	value T
	err   error
}

// NewWithError creates an unevaluated fallible thunk. The computation is
// not invoked until the first Force.
func NewWithError[T any](doer func() (T, error)) *WithError[T] {
	return &WithError[T]{state: stateUnevaluated, doer: doer}
}

// Force returns the computation's outputs, running it on the first call and
// returning the remembered pair on every later call.
//
// Like Thunk.Force, it panics on reentrant use and after a computation that
// panicked partway.
func (w *WithError[T]) Force() (T, error) {
	switch w.state {
	case stateEvaluated:
		return w.value, w.err
	case stateEvaluating:
		panic(panicReentrantForce)
	}

	doer := w.doer
	w.doer = nil
	w.state = stateEvaluating
	w.value, w.err = doer()
	w.state = stateEvaluated

	return w.value, w.err
}
