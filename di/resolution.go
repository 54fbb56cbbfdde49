package di

import "sync"

// Resolution tracks one chain of nested cell constructions. A fresh
// Resolution is created for every top-level Get, handed to the build
// function of each cell resolved inside that chain, and threaded through
// Resolve calls so the chain is visible no matter how deeply construction
// nests. A cell that sees its own construction chain arrive a second time
// reports a circular dependency instead of deadlocking.
//
// Build functions treat the Resolution as an opaque token: they forward it
// to Resolve and Deferred and never inspect it. Identity is what matters,
// not contents.
type Resolution struct {
	mu   sync.Mutex
	path []string
	live bool
}

func newResolution() *Resolution {
	return &Resolution{live: true}
}

// push records entry into a cell's build function.
func (r *Resolution) push(name string) {
	r.mu.Lock()
	r.path = append(r.path, name)
	r.mu.Unlock()
}

// pop records exit from the most recently entered build function.
func (r *Resolution) pop() {
	r.mu.Lock()
	if n := len(r.path); n > 0 {
		r.path = r.path[:n-1]
	}
	r.mu.Unlock()
}

// Path returns a copy of the construction chain so far, outermost first.
func (r *Resolution) Path() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.path))
	copy(out, r.path)
	return out
}

// pathTo returns the chain with the re-entered cell appended, the shape
// reported inside a CircularDependencyError.
func (r *Resolution) pathTo(name string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.path)+1)
	out = append(out, r.path...)
	return append(out, name)
}

// finish marks the chain as complete. Deferred accessors captured during
// the chain stop forwarding the token once it is finished and resolve on a
// fresh chain instead.
func (r *Resolution) finish() {
	r.mu.Lock()
	r.live = false
	r.mu.Unlock()
}

func (r *Resolution) alive() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}
