package di

// Accessor is a deferred read of a value. Calling it evaluates the binding
// at that moment rather than at the time the accessor was created, which is
// what lets two components hold accessors to each other before either one
// exists. An accessor carries no cache of its own; memoization lives in the
// cell behind it, so repeated calls are cheap and always agree.
type Accessor[T any] func() (T, error)

// Must returns the accessor's value and panics on error.
func (a Accessor[T]) Must() T {
	v, err := a()
	if err != nil {
		panic(err)
	}
	return v
}

// Deferred returns an accessor for the cell bound to the construction chain
// r. While r is in flight the accessor resolves under it, so a build
// function that reads the accessor of a cell already on the chain gets a
// CircularDependencyError instead of deadlocking. After r finishes, each
// call resolves on a fresh chain, the same as Accessor.
//
// Build functions wiring components together should hand out Deferred
// accessors; accessors created for callers outside any build can use
// Accessor directly.
func Deferred[T any](r *Resolution, c *Cell[T]) Accessor[T] {
	return func() (T, error) {
		return c.Resolve(r)
	}
}
