package scheduler

// PriorityEntry is a scored candidate target, as reported back to a
// caller that wants to inspect what UpdateQueue pushed (tests, metrics)
// without popping it.
type PriorityEntry struct {
	NodeID        int32
	Similarity    int32
	ConstraintNb  int32
	GradientScore float64
	SeedID        int32
}

// Cost is constraint_nb*(constraint_nb-similarity): smaller means
// higher priority. Computed in int64 since ConstraintNb can reach
// predicate.MaxExits (100000) and the product would overflow int32.
func (p PriorityEntry) Cost() int64 {
	return int64(p.ConstraintNb) * int64(p.ConstraintNb-p.Similarity)
}

// entryItem is the priority-queue element wrapping a PriorityEntry. It
// carries no heap index; queued entries are never updated in place.
type entryItem struct {
	entry PriorityEntry
}
