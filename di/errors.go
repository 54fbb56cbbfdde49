package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrCircularDependency is the sentinel matched by errors.Is for every
	// circular-dependency fault. The concrete error carried by a failed
	// resolve is a CircularDependencyError, which names the offending cell
	// and the construction path that closed the loop.
	ErrCircularDependency = errors.New("di: circular dependency")
)

// CircularDependencyError is returned when resolving a cell re-enters that
// same cell before its build function has completed. It is fatal to the
// triggering resolve but leaves every involved cell retryable: once the
// fault has unwound, the cells return to their unbuilt state.
type CircularDependencyError struct {
	// Cell is the name of the cell that was re-entered.
	Cell string

	// Path is the construction chain at the moment of re-entry, outermost
	// first, ending with the re-entered cell. For a two-cell loop it reads
	// like ["a", "b", "a"].
	Path []string
}

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	// Example: di: circular dependency on cell "a" (path: a -> b -> a)
	var sb strings.Builder
	sb.WriteString("di: circular dependency on cell ")
	sb.WriteString(strconv.Quote(e.Cell))
	if len(e.Path) > 0 {
		sb.WriteString(" (path: ")
		sb.WriteString(strings.Join(e.Path, " -> "))
		sb.WriteString(")")
	}
	return sb.String()
}

// Is reports whether target is the circular-dependency sentinel, so callers
// can test errors.Is(err, ErrCircularDependency) without knowing the
// concrete type.
func (e CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}

// DuplicateNameError is the panic value raised when a cell or factory
// binding is registered under a name the injector already knows.
// Registration happens once, in code, at injector construction; a duplicate
// is a wiring bug, not a runtime condition.
type DuplicateNameError struct{ Name string }

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	// Example: di: duplicate registration for "serviceA"
	return "di: duplicate registration for " + strconv.Quote(e.Name)
}

// NilBuildError is the panic value raised when a cell is created with a nil
// build function.
type NilBuildError struct{ Name string }

// Error implements the error interface.
func (e NilBuildError) Error() string {
	// Example: di: nil build function for cell "serviceA"
	return "di: nil build function for cell " + strconv.Quote(e.Name)
}

// NilFactoryError is the panic value raised when a factory binding is
// created with a nil default factory. A nil override is legal (it means
// "use the default"); a nil default is not.
type NilFactoryError struct{ Name string }

// Error implements the error interface.
func (e NilFactoryError) Error() string {
	// Example: di: nil default factory for binding "handler"
	return "di: nil default factory for binding " + strconv.Quote(e.Name)
}
