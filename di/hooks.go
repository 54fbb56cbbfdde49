package di

import "time"

// Event describes one build observed by hooks.
type Event struct {
	// Cell is the name of the cell being built.
	Cell string

	// Path is the construction chain at the time of the event, outermost
	// first. The last element is Cell itself.
	Path []string

	// Duration is how long the build ran. It is zero on start events.
	Duration time.Duration

	// Err is the build error on failure events and nil otherwise.
	Err error
}

// HookFunc observes a build event. Hooks run on the goroutine doing the
// build, so they should return quickly.
type HookFunc func(Event)

// Hooks bundles the observation points of an injector's builds. Any field
// may be nil; nil hooks are skipped.
type Hooks struct {
	// OnStart fires just before a build function runs.
	OnStart HookFunc

	// OnSuccess fires after a build function returns a value.
	OnSuccess HookFunc

	// OnFailure fires after a build function returns an error. The event
	// carries the error.
	OnFailure HookFunc
}

// Merge combines two hook sets into one that fires h's hooks first and
// other's second.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnStart:   chainHooks(h.OnStart, other.OnStart),
		OnSuccess: chainHooks(h.OnSuccess, other.OnSuccess),
		OnFailure: chainHooks(h.OnFailure, other.OnFailure),
	}
}

func chainHooks(a, b HookFunc) HookFunc {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(ev Event) {
			a(ev)
			b(ev)
		}
	}
}

func (h Hooks) start(ev Event) {
	if h.OnStart != nil {
		h.OnStart(ev)
	}
}

func (h Hooks) success(ev Event) {
	if h.OnSuccess != nil {
		h.OnSuccess(ev)
	}
}

func (h Hooks) failure(ev Event) {
	if h.OnFailure != nil {
		h.OnFailure(ev)
	}
}
