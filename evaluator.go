package lazy

// Evaluator is anything that can produce a value of type T. It generalizes
// thunks beyond closures: when many thunks share one computation that only
// differs in its input, implementing Evaluator on the input type lets each
// thunk store just the input instead of a closure capturing it.
type Evaluator[T any] interface {
	Evaluate() T
}

// Func adapts an ordinary niladic function to the Evaluator interface.
type Func[T any] func() T

func (f Func[T]) Evaluate() T {
	return f()
}

// FromEvaluator creates an unevaluated thunk from an Evaluator. Evaluate is
// not invoked until the first Force.
func FromEvaluator[T any](doer Evaluator[T]) *Thunk[T] {
	return &Thunk[T]{state: stateUnevaluated, doer: doer}
}
