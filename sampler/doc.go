// Package sampler implements the engine's global run state: which exits
// have been covered, per-exit gradient reservoirs, the self/base/delta
// phase state machine, the instrumentation hook that the target calls on
// every executed comparison, and the gradient-score update folded in at
// the end of each sample.
//
// An Engine is process-wide, mutable, single-threaded state, built for
// no locks and an allocation-light hot path: this type is deliberately
// not safe for concurrent use, unlike a general-purpose graph type meant
// to be shared across goroutines. The instrumentation hook runs inline
// on the thread executing the instrumented target, and the driver
// orchestrates phases on that same thread.
package sampler
