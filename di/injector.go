package di

import (
	"sort"
	"sync"
	"time"
)

// handle is the untyped view the injector keeps of a registered cell.
type handle interface {
	Name() string
	State() State
}

// bindingHandle is the untyped view the injector keeps of a registered
// factory binding.
type bindingHandle interface {
	Name() string
	Overridden() bool
}

// Injector is a registry of named cells and factory bindings making up one
// object graph. Registration happens in code while the graph is assembled,
// through Provide and ProvideFactory; construction stays lazy and is driven
// by cell reads, never by the injector. The injector's own role is
// bookkeeping: it enforces unique names, threads its hooks through every
// build, and answers diagnostic queries about what exists and what has been
// built so far.
//
// Typed access to a value goes through the *Cell returned at registration,
// not through the injector. Keeping the typed handles in a struct alongside
// the injector, one field per cell, is the intended layout; extending a
// graph is then plain struct composition, with the extension embedding the
// base so base cells stay shared.
type Injector struct {
	mu       sync.RWMutex
	cells    map[string]handle
	bindings map[string]bindingHandle
	hooks    Hooks
}

// Option configures an injector at construction.
type Option func(*Injector)

// WithHooks merges h into the injector's hook set. Passing the option
// multiple times chains the hook sets in order.
func WithHooks(h Hooks) Option {
	return func(inj *Injector) {
		inj.hooks = inj.hooks.Merge(h)
	}
}

// New returns an empty injector.
func New(opts ...Option) *Injector {
	inj := &Injector{
		cells:    make(map[string]handle),
		bindings: make(map[string]bindingHandle),
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// Provide registers a cell under name and returns it. The build function is
// wrapped so the injector's hooks observe every run. Provide panics with
// DuplicateNameError when the name is taken and with NilBuildError when
// build is nil.
func Provide[T any](inj *Injector, name string, build BuildFunc[T]) *Cell[T] {
	if build == nil {
		panic(NilBuildError{Name: name})
	}
	c := NewCell(name, observed(inj, name, build))
	inj.addCell(c)
	return c
}

// ProvideFactory registers a factory binding under name and returns it. The
// override is fixed here, once, for the binding's lifetime; pass nil to use
// the default. ProvideFactory panics with DuplicateNameError when the name
// is taken and with NilFactoryError when def is nil. Bindings and cells
// live in separate namespaces, so a binding may share a name with the cell
// built from it.
func ProvideFactory[P, T any](inj *Injector, name string, def, override Factory[P, T]) *Binding[P, T] {
	b := NewBinding(name, def, override)
	inj.addBinding(b)
	return b
}

// observed wraps a build function with the injector's hook firing. The
// wrapped function runs after the cell has pushed its name onto the chain,
// so the event path ends with the cell itself.
func observed[T any](inj *Injector, name string, build BuildFunc[T]) BuildFunc[T] {
	return func(r *Resolution) (T, error) {
		ev := Event{Cell: name, Path: r.Path()}
		inj.hooks.start(ev)

		began := time.Now()
		v, err := build(r)
		ev.Duration = time.Since(began)

		if err != nil {
			ev.Err = err
			inj.hooks.failure(ev)
			return v, err
		}
		inj.hooks.success(ev)
		return v, nil
	}
}

func (inj *Injector) addCell(h handle) {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	if _, dup := inj.cells[h.Name()]; dup {
		panic(DuplicateNameError{Name: h.Name()})
	}
	inj.cells[h.Name()] = h
}

func (inj *Injector) addBinding(b bindingHandle) {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	if _, dup := inj.bindings[b.Name()]; dup {
		panic(DuplicateNameError{Name: b.Name()})
	}
	inj.bindings[b.Name()] = b
}

// Hooks returns the injector's hook set, for extensions that want to carry
// the base injector's hooks forward.
func (inj *Injector) Hooks() Hooks {
	return inj.hooks
}

// Names returns the registered cell names in sorted order.
func (inj *Injector) Names() []string {
	inj.mu.RLock()
	defer inj.mu.RUnlock()
	names := make([]string, 0, len(inj.cells))
	for name := range inj.cells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BindingNames returns the registered factory binding names in sorted
// order.
func (inj *Injector) BindingNames() []string {
	inj.mu.RLock()
	defer inj.mu.RUnlock()
	names := make([]string, 0, len(inj.bindings))
	for name := range inj.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// States returns a snapshot of every cell's lifecycle state keyed by name.
func (inj *Injector) States() map[string]State {
	inj.mu.RLock()
	defer inj.mu.RUnlock()
	states := make(map[string]State, len(inj.cells))
	for name, h := range inj.cells {
		states[name] = h.State()
	}
	return states
}

// Resolved reports whether the named cell exists and holds a built value.
func (inj *Injector) Resolved(name string) bool {
	inj.mu.RLock()
	h, ok := inj.cells[name]
	inj.mu.RUnlock()
	return ok && h.State() == StateInitialized
}

// Overridden reports whether the named binding exists and dispatches to an
// override.
func (inj *Injector) Overridden(name string) bool {
	inj.mu.RLock()
	b, ok := inj.bindings[name]
	inj.mu.RUnlock()
	return ok && b.Overridden()
}
