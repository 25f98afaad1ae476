package sampler

import (
	"math"

	"github.com/Wu-yunxiang/coverme-tree-select/predicate"
)

// updateSample folds the just-finished base or delta sample into
// gradient_score_sum, per exit still unexplored. It does not check the
// mode itself; FinishSample only calls it outside self mode.
//
// Two details here are deliberate, not incidental: the interior-position
// guard requires both base and delta distances to be non-positive (not
// either — a regression on one side still disqualifies the position),
// and ratioMax is seeded on the first accepted interior position rather
// than compared against a sentinel, since the loop is only ever entered
// once a baseline long enough to have an interior exists.
func (e *Engine) updateSample() {
	for _, exit := range e.unexplored.Members() {
		base := e.baseR[exit]
		delta := e.deltaR[exit]
		b := int32(len(base))
		d := int32(len(delta))

		if b <= 1 {
			continue // no exploitable baseline
		}
		if b > d {
			continue // the delta sample regressed
		}
		if b < d {
			e.gradientScoreSum[exit] += predicate.GradientReward
			continue
		}

		br, okBr := base[b]
		dr, okDr := delta[d]
		if !okBr || !okDr || br <= 0 || dr <= 0 {
			continue
		}
		k := br / (br - dr)
		if math.IsNaN(k) || math.IsInf(k, 0) {
			continue
		}

		// b >= 2 here (the b<=1 guard above), so this loop always runs at
		// least once and ratioMax is always seeded by its first iteration.
		var ratioMax float64
		haveRatio := false
		ok := true
		for j := int32(1); j < b; j++ {
			bj, okBj := base[j]
			dj, okDj := delta[j]
			if !okBj || !okDj || !(bj <= 0 && dj <= 0) {
				ok = false
				break
			}
			ratio := (bj - dj) / bj * k
			if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
				ok = false
				break
			}
			if !haveRatio || ratio > ratioMax {
				ratioMax = ratio
				haveRatio = true
			}
		}
		if !ok {
			continue
		}
		if ratioMax < 1 {
			e.gradientScoreSum[exit] += 1 - ratioMax
		}
	}
}
