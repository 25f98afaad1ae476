// Package scheduler scores unexplored exits from accumulated gradient
// evidence and prefix proximity, and dispenses the next (target, seed)
// pair for the outside driver to fuzz.
//
// The priority queue is a container/heap.Interface implementation in the
// same shape as graph/algorithms' Dijkstra runner: an unexported item
// type plus an unexported slice type carrying Len/Less/Swap/Push/Pop,
// wrapped by an exported type that owns heap.Init/Push/Pop calls so
// callers never touch container/heap directly.
package scheduler
