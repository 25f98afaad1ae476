// Package exitset implements a dense, word-packed set over a fixed range
// of non-negative exit ids.
//
// Studied gaissmai-bart's internal/bitset (word/shift/mask bit tricks over
// a fixed [4]uint64) and generalized it to a slice sized at construction
// time, since the exit-id universe (0..2*brCount-1) is only known once the
// instrumentation metadata has been read.
package exitset

import "math/bits"

// Set is a membership set over the dense range [0, n). It also keeps a
// compact list of current members so callers can iterate without scanning
// the full bit range — important for the unexplored-exit loop in the
// instrumentation hook, which runs once per comparison.
type Set struct {
	bits    []uint64
	n       int32
	members []int32
	pos     []int32 // pos[id] = index into members, or -1 if absent
}

// New allocates a Set over the range [0, n).
func New(n int32) *Set {
	return &Set{
		bits:    make([]uint64, (int(n)+63)>>6),
		n:       n,
		members: make([]int32, 0, n),
		pos:     newFilled(int(n), -1),
	}
}

func newFilled(n int, v int32) []int32 {
	s := make([]int32, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Len reports how many ids are currently members.
func (s *Set) Len() int { return len(s.members) }

// Contains reports whether id is currently a member.
func (s *Set) Contains(id int32) bool {
	if id < 0 || id >= s.n {
		return false
	}
	return s.bits[id>>6]&(1<<uint(id&63)) != 0
}

// Add inserts id, reporting whether it was newly added.
func (s *Set) Add(id int32) bool {
	if id < 0 || id >= s.n || s.Contains(id) {
		return false
	}
	s.bits[id>>6] |= 1 << uint(id&63)
	s.pos[id] = int32(len(s.members))
	s.members = append(s.members, id)
	return true
}

// Remove deletes id, reporting whether it was present. The member list is
// kept dense via swap-delete, so iteration order is not preserved across
// removals.
func (s *Set) Remove(id int32) bool {
	if id < 0 || id >= s.n || !s.Contains(id) {
		return false
	}
	s.bits[id>>6] &^= 1 << uint(id&63)
	i := s.pos[id]
	last := len(s.members) - 1
	movedID := s.members[last]
	s.members[i] = movedID
	s.pos[movedID] = i
	s.members = s.members[:last]
	s.pos[id] = -1
	return true
}

// Members returns the current members in unspecified order. The returned
// slice aliases internal state and must not be retained across further
// Add/Remove calls.
func (s *Set) Members() []int32 { return s.members }

// PopCount reports the number of set bits directly from the backing
// bitset, independent of the members slice; used for sanity checks.
func (s *Set) PopCount() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}
