// Package branchtree loads and exposes the branch-exit dependency forest:
// for every exit id in [0, 2*brCount), which exit is its nearest
// control-dependence parent, which exits are its children, and the
// root-to-exit prefix (and prefix→index map) used throughout the engine
// to test "is this exit on the path to that one".
//
// A Tree is built once by Load and is immutable for the remainder of the
// process; there is no mutation API.
package branchtree

// Tree is the forest of branch exits. Exit ids are dense in
// [0, 2*BrCount()): ids [0, BrCount()) are "true" exits, ids
// [BrCount(), 2*BrCount()) are the corresponding "false" exits, and
// Reverse maps between the two halves.
type Tree struct {
	brCount  int32
	argCount int32

	// parent[e] is e's nearest control-dependence parent, or e itself if
	// e is a root.
	parent []int32

	// children[e] are the exits whose nearest control-dependence parent
	// is e.
	children [][]int32

	// prefix[e] is the root-to-e path, inclusive of both ends.
	prefix [][]int32

	// prefixIndex[e] maps an exit id on prefix[e] to its position there;
	// exits not on the prefix are absent from the map.
	prefixIndex []map[int32]int32
}

// BrCount reports the number of instrumented comparison sites.
func (t *Tree) BrCount() int32 { return t.brCount }

// ArgCount reports the instrumented target's argument count. The core
// never consumes this itself; it exists purely to be surfaced to the
// driver.
func (t *Tree) ArgCount() int32 { return t.argCount }

// NumExits reports the total exit-id space, 2*BrCount().
func (t *Tree) NumExits() int32 { return 2 * t.brCount }

// Reverse returns the opposite-truth exit for e: e+BrCount() if e is a
// true exit, e-BrCount() if e is a false exit. Reverse does not bounds
// check e; callers are expected to have already validated e against
// NumExits().
func (t *Tree) Reverse(e int32) int32 {
	if e < t.brCount {
		return e + t.brCount
	}
	return e - t.brCount
}

// Parent returns e's nearest control-dependence parent (e itself for a
// root), or -1 if e is out of range.
func (t *Tree) Parent(e int32) int32 {
	if !t.inRange(e) {
		return -1
	}
	return t.parent[e]
}

// ChildrenCount returns how many exits have e as their nearest
// control-dependence parent, or 0 if e is out of range.
func (t *Tree) ChildrenCount(e int32) int32 {
	if !t.inRange(e) {
		return 0
	}
	return int32(len(t.children[e]))
}

// Child returns the i-th child of e, or -1 if e or i is out of range.
func (t *Tree) Child(e, i int32) int32 {
	if !t.inRange(e) || i < 0 || i >= int32(len(t.children[e])) {
		return -1
	}
	return t.children[e][i]
}

// Depth returns |P(e)|, the length of e's root-to-exit prefix, or 0 if e
// is out of range.
func (t *Tree) Depth(e int32) int32 {
	if !t.inRange(e) {
		return 0
	}
	return int32(len(t.prefix[e]))
}

// Prefix returns e's root-to-exit path. The returned slice aliases
// internal state and must not be modified by the caller.
func (t *Tree) Prefix(e int32) []int32 {
	if !t.inRange(e) {
		return nil
	}
	return t.prefix[e]
}

// PrefixIndex reports the position of exit on e's prefix, and whether
// exit is on that prefix at all.
func (t *Tree) PrefixIndex(e, exit int32) (int32, bool) {
	if !t.inRange(e) {
		return 0, false
	}
	idx, ok := t.prefixIndex[e][exit]
	return idx, ok
}

func (t *Tree) inRange(e int32) bool {
	return e >= 0 && e < t.NumExits()
}
