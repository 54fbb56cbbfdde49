// Package di implements a lazy, order-independent, cycle-detecting object
// graph with explicit wiring.
//
// The package is built from four pieces that compose rather than one
// container that does everything:
//
//   - Cell[T] — a memoized lazy container. The build function runs on the
//     first read, the result is cached on success, and every later read
//     returns the cached value. A failed build caches nothing: the error
//     goes back to the caller as is and the next read retries.
//
//   - Accessor[T] — a zero-argument deferred read. Accessors are cheap to
//     create before the underlying value exists and evaluate fresh on every
//     call, which is what lets two components reference each other.
//
//   - Binding[P, T] — a default factory paired with an optional override.
//     The override is chosen once, at construction, and serves every call
//     for the binding's lifetime; there is no way to swap it afterwards.
//
//   - Injector — a name-indexed registry of cells and bindings for one
//     graph. It enforces unique names, threads hooks through every build,
//     and answers diagnostics (Names, States, Resolved). It never triggers
//     construction itself.
//
// Quick guidance
//
// Wire the graph in your composition root: create an Injector, register
// cells with Provide and bindings with ProvideFactory, and keep the typed
// *Cell handles in a struct, one field per cell. Inside a build function,
// reach other cells through Resolve or Deferred with the chain token the
// build received; that is what turns a dependency loop into a
// CircularDependencyError instead of a deadlock. Extend a graph by
// embedding its struct in a new one and registering the extra cells on the
// same injector.
//
// Cells are safe for concurrent use: concurrent first reads elect one
// builder, everyone else waits, and at most one build completes.
//
// Import
//
//	"github.com/sghaida/wirebox/di"
package di
