package di

// Factory builds a value from a parameter. Bindings hold two of them, a
// default and an optional override, and dispatch every call to exactly one.
type Factory[P, T any] func(P) (T, error)

// Binding pairs a default factory with an optional override, chosen once at
// construction. When the override is non-nil every call goes to it and the
// default is never consulted; when it is nil the default serves every call.
// The choice is fixed for the binding's lifetime, so two calls can never
// straddle different factories.
type Binding[P, T any] struct {
	name     string
	def      Factory[P, T]
	override Factory[P, T]
}

// NewBinding returns a binding dispatching to override when non-nil and to
// def otherwise. It panics with NilFactoryError when def is nil; a binding
// needs a factory to fall back on.
func NewBinding[P, T any](name string, def, override Factory[P, T]) *Binding[P, T] {
	if def == nil {
		panic(NilFactoryError{Name: name})
	}
	return &Binding[P, T]{name: name, def: def, override: override}
}

// Name returns the name the binding was created with.
func (b *Binding[P, T]) Name() string {
	return b.name
}

// Overridden reports whether calls dispatch to the override.
func (b *Binding[P, T]) Overridden() bool {
	return b.override != nil
}

// Effective returns the factory that serves calls, the override when
// present and the default otherwise.
func (b *Binding[P, T]) Effective() Factory[P, T] {
	if b.override != nil {
		return b.override
	}
	return b.def
}

// Call invokes the effective factory with p.
func (b *Binding[P, T]) Call(p P) (T, error) {
	return b.Effective()(p)
}
