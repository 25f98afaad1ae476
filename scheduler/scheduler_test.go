package scheduler_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wu-yunxiang/coverme-tree-select/branchtree"
	"github.com/Wu-yunxiang/coverme-tree-select/sampler"
	"github.com/Wu-yunxiang/coverme-tree-select/scheduler"
)

// fakeSource lets the priority-ordering tests supply exact
// PriorityEntry fields without needing a real Engine.
type fakeSource struct {
	unexplored []int32
	baseRLen   map[int32]int32
	gradient   map[int32]float64
	seedID     int32
	explored   map[int32]bool
}

func (f *fakeSource) UnexploredIDs() []int32                { return f.unexplored }
func (f *fakeSource) BaseRLen(e int32) int32                 { return f.baseRLen[e] }
func (f *fakeSource) GradientScoreSum(e int32) float64       { return f.gradient[e] }
func (f *fakeSource) SeedIDBase() int32                      { return f.seedID }
func (f *fakeSource) IsExplored(e int32) bool                { return f.explored[e] }

type fakeDepths struct{ depth map[int32]int32 }

func (d *fakeDepths) Depth(e int32) int32 { return d.depth[e] }

// Three entries with costs 2, 9, and 0 should pop smallest cost first.
func TestScheduler_CostOrdering(t *testing.T) {
	src := &fakeSource{
		unexplored: []int32{0, 1, 2},
		baseRLen:   map[int32]int32{0: 2, 1: 1, 2: 3}, // similarity = baseRLen-1: 1, 0, 2
		gradient:   map[int32]float64{0: 0.5, 1: 0.3, 2: 0.8},
		explored:   map[int32]bool{},
	}
	depths := &fakeDepths{depth: map[int32]int32{0: 2, 1: 3, 2: 2}}

	s := scheduler.New()
	s.UpdateQueue(src, depths)

	var order []int32
	for i := 0; i < 3; i++ {
		id, _ := s.PopTarget(src)
		order = append(order, id)
	}
	require.Equal(t, []int32{2, 0, 1}, order)
}

// When two entries share the same cost, the one with the lower
// gradient score pops first.
func TestScheduler_GradientTieBreak(t *testing.T) {
	src := &fakeSource{
		unexplored: []int32{0, 1},
		baseRLen:   map[int32]int32{0: 2, 1: 2}, // similarity = 1 for both
		gradient:   map[int32]float64{0: 0.5, 1: 0.8},
		explored:   map[int32]bool{},
	}
	depths := &fakeDepths{depth: map[int32]int32{0: 2, 1: 2}}

	s := scheduler.New()
	s.UpdateQueue(src, depths)

	first, _ := s.PopTarget(src)
	require.EqualValues(t, 0, first)
	second, _ := s.PopTarget(src)
	require.EqualValues(t, 1, second)
}

// PopTarget never returns an exit that has since become explored.
// Stale entries for exits explored after UpdateQueue pushed them must
// be skipped, never evicted up front: the queue is purely additive.
func TestScheduler_SkipsExploredEntries(t *testing.T) {
	src := &fakeSource{
		unexplored: []int32{0, 1},
		baseRLen:   map[int32]int32{0: 1, 1: 1},
		gradient:   map[int32]float64{0: 1, 1: 1},
		explored:   map[int32]bool{0: false, 1: false},
	}
	depths := &fakeDepths{depth: map[int32]int32{0: 1, 1: 1}}

	s := scheduler.New()
	s.UpdateQueue(src, depths)

	// 0 gets explored behind the scheduler's back before it is popped.
	src.explored[0] = true

	id, _ := s.PopTarget(src)
	require.EqualValues(t, 1, id)

	id, _ = s.PopTarget(src)
	require.EqualValues(t, -1, id)
}

func TestScheduler_EmptyQueueReturnsSentinels(t *testing.T) {
	s := scheduler.New()
	id, seed := s.PopTarget(&fakeSource{explored: map[int32]bool{}})
	require.EqualValues(t, -1, id)
	require.EqualValues(t, -1, seed)
}

// Round-trip property: a fresh base phase followed by UpdateQueue with
// no intervening Pen calls pushes one entry per unexplored exit with
// similarity=-1 (base_r empty, |base_r|-1 = -1) and gradient_score=0.
func TestScheduler_FreshBasePhaseYieldsNegativeOneSimilarity(t *testing.T) {
	tree, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("2 0")),
		branchtree.WithEdgesReader(strings.NewReader("0 1\n")),
	)
	require.NoError(t, err)

	eng := sampler.New(tree)
	eng.BeginBasePhase()

	s := scheduler.New()
	s.UpdateQueue(eng, tree)
	require.Equal(t, int(tree.NumExits()), s.Len())

	for _, e := range s.Entries() {
		require.EqualValues(t, -1, e.Similarity)
		require.Equal(t, 0.0, e.GradientScore)
	}

	seen := map[int32]bool{}
	for s.Len() > 0 {
		id, seedID := s.PopTarget(eng)
		if id == -1 {
			break
		}
		require.EqualValues(t, 0, seedID)
		seen[id] = true
	}
	require.Len(t, seen, int(tree.NumExits()))
}
