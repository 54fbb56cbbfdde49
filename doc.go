// Package wirebox provides a lazy, order-independent object-graph resolver
// for Go.
//
// The building blocks are intentionally small:
//
//   - di.Cell[T]: a memoized lazy container. The build function runs on first
//     read, the value is cached on success, and failures are retryable.
//   - di.Accessor[T] / di.Deferred: zero-argument deferred reads, evaluated
//     fresh at call time so components can hold references to each other
//     before either exists.
//   - di.Binding[P, T]: a default factory with an optional override, chosen
//     once at construction and fixed for the binding's lifetime.
//   - di.Injector: a registry of named cells and bindings with build hooks
//     and diagnostics. Construction stays lazy and is driven by reads.
//
// Wiring remains explicit in your composition root (main/bootstrap); there is
// no reflection, no struct tags, and no automatic scanning. Dependency cycles
// are detected at resolve time and reported with the construction path that
// closed the loop instead of deadlocking or overflowing the stack.
//
// See subpackages:
//   - di: the resolver library
//   - otelbox: OpenTelemetry tracing hooks for injector builds
//   - examples/billing: wiring a graph with mutual references and overrides
//   - examples/webapp: an HTTP service assembled from an injector
package wirebox
