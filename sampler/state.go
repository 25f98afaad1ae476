package sampler

import (
	"github.com/Wu-yunxiang/coverme-tree-select/branchtree"
	"github.com/Wu-yunxiang/coverme-tree-select/internal/exitset"
	"github.com/Wu-yunxiang/coverme-tree-select/predicate"
)

// Engine is the process-wide run state: the explored/unexplored split,
// the per-exit gradient reservoirs, the phase flags, and the per-sample
// scratch the instrumentation hook mutates on every call. Every
// exit-indexed slice is sized tree.NumExits() once, at New, and never
// reallocated afterward.
type Engine struct {
	tree *branchtree.Tree

	explored   *exitset.Set
	unexplored *exitset.Set
	seedOfExit []int32

	baseR []map[int32]float64
	deltaR []map[int32]float64
	gradientScoreSum []float64

	selfMode  bool
	basePhase bool

	target                 int32
	r                      float64
	seedIDBase             int32
	efcSeedCount           int32
	isEfc                  bool
	condsSatisfiedMaxSeed  int32
	condsSatisfiedMaxSample int32

	condsSatisfiedMaxSampleForUnexplored []int32
	condsSatisfiedLast                  []int32
	temporaryStart                      []int32
	temporaryR                          []map[int32]float64
}

// New builds an Engine bound to tree. All exits start unexplored, all
// seeds unassigned, all reservoirs empty.
func New(tree *branchtree.Tree) *Engine {
	n := tree.NumExits()
	e := &Engine{
		tree:       tree,
		explored:   exitset.New(n),
		unexplored: exitset.New(n),
		seedOfExit: make([]int32, n),

		baseR:            make([]map[int32]float64, n),
		deltaR:           make([]map[int32]float64, n),
		gradientScoreSum: make([]float64, n),

		condsSatisfiedMaxSampleForUnexplored: make([]int32, n),
		condsSatisfiedLast:                   make([]int32, n),
		temporaryStart:                       make([]int32, n),
		temporaryR:                           make([]map[int32]float64, n),

		r: predicate.InitialR,
	}
	for i := int32(0); i < n; i++ {
		e.seedOfExit[i] = -1
		e.unexplored.Add(i)
	}
	return e
}

// GetR reports the current best scalar distance summary for the target
// under self mode.
func (e *Engine) GetR() float64 { return e.r }

// NodeSeed reports the seed id that first covered exit, or -1 if exit is
// out of range or never covered.
func (e *Engine) NodeSeed(exit int32) int32 {
	if exit < 0 || exit >= e.tree.NumExits() {
		return -1
	}
	return e.seedOfExit[exit]
}

// Target reports the current self-mode target exit.
func (e *Engine) Target() int32 { return e.target }

// IsExplored reports whether exit has been taken by any sample so far.
func (e *Engine) IsExplored(exit int32) bool { return e.explored.Contains(exit) }

// UnexploredIDs returns the current unexplored exit ids. The returned
// slice aliases internal state and must not be retained across a call
// that mutates the engine.
func (e *Engine) UnexploredIDs() []int32 { return e.unexplored.Members() }

// ExploredCount reports |explored|.
func (e *Engine) ExploredCount() int32 { return int32(e.explored.Len()) }

// BaseRLen reports |base_r[exit]|, the deepest prefix depth the most
// recent base phase recorded a reservoir entry for.
func (e *Engine) BaseRLen(exit int32) int32 { return int32(len(e.baseR[exit])) }

// GradientScoreSum reports the accumulated gradient score for exit
// within the current base/delta cycle.
func (e *Engine) GradientScoreSum(exit int32) float64 { return e.gradientScoreSum[exit] }

// SeedIDBase reports the seed id in effect when the current base phase
// began.
func (e *Engine) SeedIDBase() int32 { return e.seedIDBase }
