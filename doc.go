// Package coverme is the thin driver-facing facade over the branch-exit
// tree, the sampling engine, and the priority scheduler: construction,
// phase transitions, the instrumentation hook, and tree introspection,
// all delegated straight through with no algorithmic logic of its own.
//
// A Runtime is returned as a pointer from InitializeRuntime rather than
// held as a package-level singleton — idiomatic for a Go library, and no
// different in practice from a singleton for a driver that constructs
// exactly one per process. A Runtime is not safe for concurrent use and
// has no teardown method.
package coverme
