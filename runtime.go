package coverme

import (
	"github.com/Wu-yunxiang/coverme-tree-select/branchtree"
	"github.com/Wu-yunxiang/coverme-tree-select/sampler"
	"github.com/Wu-yunxiang/coverme-tree-select/scheduler"
)

// Runtime wires together a loaded branchtree.Tree, a sampler.Engine
// bound to it, and a scheduler.Scheduler over its exits. It is the only
// exported type in this package; apart from its constructor,
// InitializeRuntime, everything else is a method on it.
type Runtime struct {
	tree *branchtree.Tree
	eng  *sampler.Engine
	sch  *scheduler.Scheduler
}

// InitializeRuntime loads instrumentation_meta.txt and edges.txt (or
// whatever branchtree.Option overrides are supplied), builds the
// prefix/prefix-index forest, and returns a Runtime with fresh (all
// exits unexplored, all reservoirs empty) sampling state. Calling it
// twice with the same inputs produces two Runtimes with identical
// observable state.
func InitializeRuntime(opts ...branchtree.Option) (*Runtime, error) {
	tree, err := branchtree.Load(opts...)
	if err != nil {
		return nil, err
	}
	return &Runtime{
		tree: tree,
		eng:  sampler.New(tree),
		sch:  scheduler.New(),
	}, nil
}

// GetBrCount reports the instrumented target's comparison-site count.
func (r *Runtime) GetBrCount() int32 { return r.tree.BrCount() }

// GetArgCount reports the instrumented target's argument count. Unused
// by the runtime itself; surfaced purely for the driver's benefit.
func (r *Runtime) GetArgCount() int32 { return r.tree.ArgCount() }

// WarmupTarget records t as the upcoming self-mode sampling target.
func (r *Runtime) WarmupTarget(t int32) { r.eng.WarmupTarget(t) }

// BeginSelfPhase starts a self-mode sample against the warmed-up target.
func (r *Runtime) BeginSelfPhase() { r.eng.BeginSelfPhase() }

// BeginBasePhase starts a fresh base-phase sampling cycle.
func (r *Runtime) BeginBasePhase() { r.eng.BeginBasePhase() }

// BeginDeltaPhase starts a delta-phase sample within the current cycle.
func (r *Runtime) BeginDeltaPhase() { r.eng.BeginDeltaPhase() }

// FinishSample closes out the current sample and reports its flags and
// seed id; see sampler.Engine.FinishSample for the flag bit meanings.
func (r *Runtime) FinishSample() (flags int32, seedID int32) { return r.eng.FinishSample() }

// UpdateQueue pushes one priority entry, scored from the current gradient
// and proximity state, for every still-unexplored exit. The queue is not
// cleared first: entries from earlier calls stay queued, and those for
// exits explored since are skipped by PopQueueTarget.
func (r *Runtime) UpdateQueue() { r.sch.UpdateQueue(r.eng, r.tree) }

// PopQueueTarget pops the highest-priority still-unexplored exit,
// arming it as the next self-mode target. Returns (-1, -1) once nothing
// unexplored remains in the queue.
func (r *Runtime) PopQueueTarget() (targetID, seedID int32) {
	targetID, seedID = r.sch.PopTarget(r.eng)
	if targetID != -1 {
		r.eng.WarmupTarget(targetID)
	}
	return targetID, seedID
}

// GetR reports the current best self-mode distance summary.
func (r *Runtime) GetR() float64 { return r.eng.GetR() }

// Pen is the instrumentation hook; see sampler.Engine.Pen.
func (r *Runtime) Pen(lhs, rhs float64, brID, cmpID int32, isInt bool) {
	r.eng.Pen(lhs, rhs, brID, cmpID, isInt)
}

// GetNodeSeed reports the seed id that first covered exit, or -1.
func (r *Runtime) GetNodeSeed(exit int32) int32 { return r.eng.NodeSeed(exit) }

// GetTreeParent reports exit's nearest control-dependence parent.
func (r *Runtime) GetTreeParent(exit int32) int32 { return r.tree.Parent(exit) }

// GetTreeChildrenCount reports how many exits have exit as their
// nearest control-dependence parent.
func (r *Runtime) GetTreeChildrenCount(exit int32) int32 { return r.tree.ChildrenCount(exit) }

// GetTreeChild reports the i-th child of exit.
func (r *Runtime) GetTreeChild(exit, i int32) int32 { return r.tree.Child(exit, i) }
