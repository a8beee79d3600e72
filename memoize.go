package lazy

// Memoize wraps fn in a function that calls fn the first time it is
// invoked and returns the cached result on every later invocation.
//
// The returned function is not safe for concurrent use.
func Memoize[T any](fn func() T) func() T {
	thunk := New(fn)

	return thunk.Unwrap
}

// MemoizeErr is Memoize for functions that also return an error. Both
// results of the single call are cached.
//
// The returned function is not safe for concurrent use.
func MemoizeErr[T any](fn func() (T, error)) func() (T, error) {
	thunk := NewWithError(fn)

	return thunk.Force
}
