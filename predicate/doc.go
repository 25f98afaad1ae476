// Package predicate implements the comparison semantics the instrumentation
// hook needs: evaluating a comparison's truth value, and measuring how far
// a pair of operands is from flipping (or how deep inside) a desired truth
// value.
//
// Both functions are pure and allocation-free, since they sit on the
// instrumentation hook's hot path (one call per executed comparison).
package predicate
