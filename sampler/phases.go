package sampler

import "github.com/Wu-yunxiang/coverme-tree-select/predicate"

// WarmupTarget records the exit the upcoming self-mode sampling should
// aim at, and resets the per-seed/per-sample progress counters for it.
func (e *Engine) WarmupTarget(target int32) {
	e.target = target
	e.condsSatisfiedMaxSeed = 0
	e.condsSatisfiedMaxSample = 0
}

// BeginSelfPhase switches into self mode: samples from here on measure
// progress toward Target() rather than updating gradient reservoirs.
func (e *Engine) BeginSelfPhase() {
	e.selfMode = true
	if e.condsSatisfiedMaxSample > e.condsSatisfiedMaxSeed {
		e.condsSatisfiedMaxSeed = e.condsSatisfiedMaxSample
	}
	e.initialSample()
}

// BeginBasePhase switches into base mode: the upcoming sample is the
// unperturbed baseline of a new gradient-sampling cycle. Starts a fresh
// gradient_score_sum accumulation and a fresh base_r reservoir.
func (e *Engine) BeginBasePhase() {
	e.selfMode = false
	e.basePhase = true
	for i := range e.gradientScoreSum {
		e.gradientScoreSum[i] = 0
	}
	e.seedIDBase = e.efcSeedCount
	e.initialSample()
}

// BeginDeltaPhase switches into delta mode: the upcoming sample is a
// perturbation of the seed that began the current base phase. Starts a
// fresh delta_r reservoir.
func (e *Engine) BeginDeltaPhase() {
	e.selfMode = false
	e.basePhase = false
	e.initialSample()
}

// initialSample clears the per-sample scratch ahead of a new sample.
// basePhase must already reflect the phase this sample belongs to: base
// phase also clears base_r, delta phase also clears delta_r, self mode
// (selfMode true) clears neither, matching the reservoirs' per-cycle
// lifetime.
func (e *Engine) initialSample() {
	e.r = predicate.InitialR
	e.isEfc = false
	e.condsSatisfiedMaxSample = 0

	for i := range e.condsSatisfiedLast {
		e.condsSatisfiedLast[i] = 0
	}
	for i := range e.condsSatisfiedMaxSampleForUnexplored {
		e.condsSatisfiedMaxSampleForUnexplored[i] = 0
	}
	for i := range e.temporaryStart {
		e.temporaryStart[i] = 0
	}
	for i := range e.temporaryR {
		clear(e.temporaryR[i])
	}

	if !e.selfMode {
		if e.basePhase {
			for i := range e.baseR {
				clear(e.baseR[i])
			}
		} else {
			for i := range e.deltaR {
				clear(e.deltaR[i])
			}
		}
	}
}
