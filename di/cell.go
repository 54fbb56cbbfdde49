package di

import "sync"

// State is the lifecycle position of a Cell.
type State uint8

const (
	// StateUninitialized means the build function has not completed. A cell
	// returns here after a failed build, which is what makes failures
	// retryable.
	StateUninitialized State = iota

	// StateInitializing means a build function is currently running.
	StateInitializing

	// StateInitialized means the value is cached. The cell never leaves
	// this state.
	StateInitialized
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateInitialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// BuildFunc constructs a cell's value. The Resolution argument is the
// construction chain the build is running under; forward it to Resolve and
// Deferred calls on other cells so cycles are caught instead of deadlocking.
type BuildFunc[T any] func(*Resolution) (T, error)

// Cell is a memoized lazy container for a single value. The build function
// runs on first read, its result is cached on success, and every later read
// returns the cached value without running the build again. A failed build
// caches nothing: the error is returned to the caller as is and the next
// read retries from scratch.
//
// A Cell is safe for concurrent use. Concurrent first reads from unrelated
// goroutines elect one builder and block the rest until it settles; at most
// one build ever completes. Re-entry from the same construction chain is
// reported as a CircularDependencyError rather than blocking, so dependency
// loops fault fast with the offending path attached.
type Cell[T any] struct {
	name  string
	build BuildFunc[T]

	mu    sync.Mutex
	state State
	value T
	owner *Resolution
	done  chan struct{}
}

// NewCell returns an unbuilt cell. It panics with NilBuildError when build
// is nil, since such a cell could never produce a value.
func NewCell[T any](name string, build BuildFunc[T]) *Cell[T] {
	if build == nil {
		panic(NilBuildError{Name: name})
	}
	return &Cell[T]{name: name, build: build}
}

// Name returns the name the cell was created with.
func (c *Cell[T]) Name() string {
	return c.name
}

// State returns the cell's current lifecycle state.
func (c *Cell[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Get returns the cell's value, building it on a fresh construction chain
// if needed. Calling Get from inside another cell's build function hides
// the outer chain and turns a dependency loop into a deadlock; build
// functions must use Resolve with their chain token instead.
func (c *Cell[T]) Get() (T, error) {
	r := newResolution()
	defer r.finish()
	return c.resolve(r)
}

// MustGet is Get but panics on error.
func (c *Cell[T]) MustGet() T {
	v, err := c.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Resolve returns the cell's value under the given construction chain. A
// nil or finished chain is replaced with a fresh one, so Resolve degrades
// to Get outside of a build.
func (c *Cell[T]) Resolve(r *Resolution) (T, error) {
	if !r.alive() {
		return c.Get()
	}
	return c.resolve(r)
}

// Accessor returns a deferred read of the cell on a fresh chain per call.
// For accessors handed to build functions, use Deferred so the chain in
// flight stays visible.
func (c *Cell[T]) Accessor() Accessor[T] {
	return c.Get
}

func (c *Cell[T]) resolve(r *Resolution) (T, error) {
	for {
		c.mu.Lock()
		switch c.state {
		case StateInitialized:
			v := c.value
			c.mu.Unlock()
			return v, nil

		case StateInitializing:
			if c.owner == r {
				// Same chain arrived twice: a dependency loop.
				err := CircularDependencyError{Cell: c.name, Path: r.pathTo(c.name)}
				c.mu.Unlock()
				var zero T
				return zero, err
			}
			done := c.done
			c.mu.Unlock()
			<-done
			// The builder settled. Re-examine: success means the value is
			// cached, failure means this chain gets its own attempt.

		case StateUninitialized:
			done := make(chan struct{})
			c.state = StateInitializing
			c.owner = r
			c.done = done
			c.mu.Unlock()
			return c.runBuild(r, done)

		default:
			c.mu.Unlock()
			panic("di: invalid cell state " + c.state.String())
		}
	}
}

// runBuild executes the build function outside the cell lock so nested
// resolves cannot deadlock on it. The deferred settlement runs even when
// the build panics: the cell rolls back to uninitialized and waiters are
// released before the panic continues unwinding.
func (c *Cell[T]) runBuild(r *Resolution, done chan struct{}) (val T, err error) {
	ok := false
	defer func() {
		c.mu.Lock()
		if ok {
			c.state = StateInitialized
			c.value = val
		} else {
			c.state = StateUninitialized
		}
		c.owner = nil
		c.done = nil
		c.mu.Unlock()
		close(done)
	}()

	r.push(c.name)
	defer r.pop()

	val, err = c.build(r)
	ok = err == nil
	if !ok {
		var zero T
		val = zero
	}
	return val, err
}
