package scheduler

import "container/heap"

// entryPQ implements heap.Interface for []*entryItem, ordering by
// smaller Cost first and, on a Cost tie, smaller GradientScore first —
// the inverse comparator of "higher priority pops first": entry a
// outranks b when cost(a) < cost(b), or costs are equal and
// a.GradientScore < b.GradientScore.
type entryPQ []*entryItem

func (pq entryPQ) Len() int { return len(pq) }
func (pq entryPQ) Less(i, j int) bool {
	ci, cj := pq[i].entry.Cost(), pq[j].entry.Cost()
	if ci != cj {
		return ci < cj
	}
	return pq[i].entry.GradientScore < pq[j].entry.GradientScore
}
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entryPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*entryItem))
}
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// ExitSource is the subset of sampler.Engine the scheduler reads from.
// Kept as a small interface rather than a direct dependency on the
// sampler package so scheduler stays testable with fakes.
type ExitSource interface {
	UnexploredIDs() []int32
	BaseRLen(exit int32) int32
	GradientScoreSum(exit int32) float64
	SeedIDBase() int32
	IsExplored(exit int32) bool
}

// DepthSource is the subset of branchtree.Tree the scheduler reads from.
type DepthSource interface {
	Depth(exit int32) int32
}

// Scheduler holds the priority queue of unexplored candidate targets.
// It is purely additive across cycles: UpdateQueue never clears stale
// entries for exits that have since become explored, since PopTarget
// already skips past them.
type Scheduler struct {
	pq entryPQ
}

// New returns an empty Scheduler.
func New() *Scheduler {
	s := &Scheduler{}
	heap.Init(&s.pq)
	return s
}

// UpdateQueue pushes one PriorityEntry for every exit source currently
// reports unexplored, scored from its base_r reservoir, prefix depth,
// and the accumulated gradient score for this cycle.
func (s *Scheduler) UpdateQueue(source ExitSource, depths DepthSource) {
	for _, exit := range source.UnexploredIDs() {
		entry := PriorityEntry{
			NodeID:        exit,
			Similarity:    source.BaseRLen(exit) - 1,
			ConstraintNb:  depths.Depth(exit),
			GradientScore: source.GradientScoreSum(exit),
			SeedID:        source.SeedIDBase(),
		}
		heap.Push(&s.pq, &entryItem{entry: entry})
	}
}

// PopTarget pops entries until one still unexplored is found, returning
// its node id and the seed it was scored under. Returns (-1, -1) once
// the queue is exhausted without finding one.
func (s *Scheduler) PopTarget(source ExitSource) (targetID, seedID int32) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*entryItem)
		if !source.IsExplored(item.entry.NodeID) {
			return item.entry.NodeID, item.entry.SeedID
		}
	}
	return -1, -1
}

// Len reports how many entries remain queued, including stale ones for
// exits that have since been explored.
func (s *Scheduler) Len() int { return s.pq.Len() }

// Entries returns a snapshot of the queued entries in unspecified order,
// without popping them. Intended for tests and diagnostics.
func (s *Scheduler) Entries() []PriorityEntry {
	out := make([]PriorityEntry, len(s.pq))
	for i, item := range s.pq {
		out[i] = item.entry
	}
	return out
}
