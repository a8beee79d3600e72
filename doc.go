/*
Package lazy provides single-threaded lazy evaluation.

Lazy evaluation defers a computation until its result is actually needed,
and runs it at most once: the result is cached inside the thunk and every
later access reads the cache. A plain closure also defers work, but re-runs
it on every call:

	expensive := func() int {
		fmt.Println("I am expensive to evaluate!")
		return 7
	}

	a := expensive // nothing printed
	_ = a()        // printed here
	_ = a()        // printed again

Contrast this with a thunk:

	a := lazy.New(expensive) // nothing printed
	_ = *a.Force()           // printed here
	_ = *a.Force()           // nothing printed, cached value returned

This is useful for a result that is expensive to compute, may be read many
times, but may also never be needed at all.

Every type in this package is for use within a single goroutine. Sharing a
thunk between goroutines is not supported; use sync.OnceValue (or a type
built on it) when cross-goroutine sharing is required.
*/
package lazy
