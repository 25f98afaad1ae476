package sampler

import "github.com/Wu-yunxiang/coverme-tree-select/predicate"

// Pen is the instrumentation hook: the instrumented target calls it
// exactly once per executed comparison, in program order. It is
// infallible by construction — no retries, the hook never returns an
// error — so an out-of-range brId is silently ignored rather than
// panicking, since the driver side that would need to recover from a
// panic does not exist in this module's scope.
//
// isInt is accepted for signature parity with the instrumentation
// contract but unused: the caller has already promoted integer operands
// to float64 before calling Pen.
func (e *Engine) Pen(lhs, rhs float64, brID, cmpID int32, isInt bool) {
	brCount := e.tree.BrCount()
	if brID < 0 || brID >= brCount {
		return
	}

	pred := predicate.Predicate(cmpID)
	currentTruth := predicate.Truth(lhs, rhs, pred)
	current := brID
	if !currentTruth {
		current = brID + brCount
	}

	if !e.explored.Contains(current) {
		e.explored.Add(current)
		e.unexplored.Remove(current)
		e.seedOfExit[current] = e.efcSeedCount
		e.isEfc = true
	}

	if e.selfMode {
		e.handleSelf(lhs, rhs, pred, current, currentTruth)
		return
	}

	for _, node := range e.unexplored.Members() {
		if e.basePhase {
			e.handleUnexplored(lhs, rhs, pred, current, currentTruth, node, e.baseR)
		} else {
			e.handleUnexplored(lhs, rhs, pred, current, currentTruth, node, e.deltaR)
		}
	}
}

// handleSelf advances self-mode progress toward Target(): current on
// the target's own prefix deepens conds_satisfied_max_sample (and resets
// r, since a newly reached depth needs its own unsatisfied-condition
// measurement); current's reverse on the prefix means current is the
// first unsatisfied condition, so r tightens to the distance away from
// flipping it.
func (e *Engine) handleSelf(lhs, rhs float64, pred predicate.Predicate, current int32, currentTruth bool) {
	target := e.target
	targetTruth := target < e.tree.BrCount()

	if idx, ok := e.tree.PrefixIndex(target, current); ok {
		k := idx + 1
		if k > e.condsSatisfiedMaxSample {
			e.condsSatisfiedMaxSample = k
			if k == e.tree.Depth(target) {
				e.r = 0
			} else {
				e.r = predicate.InitialR
			}
		}
		return
	}

	rev := e.tree.Reverse(current)
	idx, ok := e.tree.PrefixIndex(target, rev)
	if !ok {
		return
	}
	k := idx + 1
	if k <= e.condsSatisfiedMaxSample {
		return
	}
	d := predicate.Distance(lhs, rhs, pred, currentTruth, targetTruth, true)
	if d < e.r {
		e.r = d
	}
}

// handleUnexplored is the shared body of handle_base/handle_delta: the
// reservoir argument is base_r or delta_r depending on which phase
// called in. current on node's own prefix deepens the forward/backward
// progress counters and logs an uncommitted distance; current's reverse
// on the prefix means current is node's first unsatisfied condition,
// whose distance is committed into reservoir together with the rollback
// log built up since the last commit.
func (e *Engine) handleUnexplored(lhs, rhs float64, pred predicate.Predicate, current int32, currentTruth bool, node int32, reservoir []map[int32]float64) {
	if idx, ok := e.tree.PrefixIndex(node, current); ok {
		k := idx + 1

		if e.temporaryStart[node] == 0 {
			e.temporaryStart[node] = 1
		}
		if k > e.condsSatisfiedMaxSampleForUnexplored[node] {
			e.condsSatisfiedMaxSampleForUnexplored[node] = k
		}
		if k > e.condsSatisfiedLast[node] {
			e.condsSatisfiedLast[node] = k
		} else {
			if k < e.temporaryStart[node] {
				e.temporaryStart[node] = k
			}
			e.condsSatisfiedLast[node] = k
		}

		if e.temporaryR[node] == nil {
			e.temporaryR[node] = make(map[int32]float64)
		}
		e.temporaryR[node][k] = predicate.Distance(lhs, rhs, pred, currentTruth, currentTruth, false)
		return
	}

	rev := e.tree.Reverse(current)
	idx, ok := e.tree.PrefixIndex(node, rev)
	if !ok {
		return
	}
	k := idx + 1
	if k <= e.condsSatisfiedMaxSampleForUnexplored[node] {
		return
	}

	// target_truth is the sign of the reversed exit, not of current
	// itself: current is the first unsatisfied prefix condition, so the
	// distance measured is toward making current flip to rev's sign.
	targetTruth := !currentTruth
	d := predicate.Distance(lhs, rhs, pred, currentTruth, targetTruth, false)

	existing, had := reservoir[node][k]
	improved := !had || d < existing
	if !had {
		if reservoir[node] == nil {
			reservoir[node] = make(map[int32]float64)
		}
		reservoir[node][k] = d
	} else if d < existing {
		reservoir[node][k] = d
	}

	if improved {
		start := e.temporaryStart[node]
		for j := start; j < k; j++ {
			if v, ok2 := e.temporaryR[node][j]; ok2 {
				reservoir[node][j] = v
			}
		}
		e.temporaryStart[node] = k
	}
}
