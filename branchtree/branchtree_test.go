package branchtree_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wu-yunxiang/coverme-tree-select/branchtree"
)

// A three-exit chain (meta "3 2", edges "0 1\n1 2\n") should build a
// single root-to-leaf prefix with depths 1, 2, 3.
func TestLoad_BuildsChainPrefixAndDepth(t *testing.T) {
	tree, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("3 2")),
		branchtree.WithEdgesReader(strings.NewReader("0 1\n1 2\n")),
	)
	require.NoError(t, err)

	require.EqualValues(t, 3, tree.BrCount())
	require.EqualValues(t, 2, tree.ArgCount())
	require.EqualValues(t, 6, tree.NumExits())

	require.EqualValues(t, 0, tree.Parent(1))
	require.EqualValues(t, 1, tree.Parent(2))
	require.EqualValues(t, 0, tree.Parent(0)) // root

	require.Equal(t, []int32{0, 1, 2}, tree.Prefix(2))
	require.EqualValues(t, 3, tree.Depth(2))

	for i, want := range []int32{0, 1, 2} {
		idx, ok := tree.PrefixIndex(2, want)
		require.True(t, ok)
		require.EqualValues(t, i, idx)
	}
	_, ok := tree.PrefixIndex(2, 5)
	require.False(t, ok)
}

func TestLoad_ReverseExitArithmetic(t *testing.T) {
	tree, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("3 0")),
		branchtree.WithEdgesReader(strings.NewReader("")),
	)
	require.NoError(t, err)
	require.EqualValues(t, 3, tree.Reverse(0))
	require.EqualValues(t, 0, tree.Reverse(3))
	require.EqualValues(t, 5, tree.Reverse(2))
}

func TestLoad_ChildrenIntrospectionBounds(t *testing.T) {
	tree, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("2 0")),
		branchtree.WithEdgesReader(strings.NewReader("0 1\n")),
	)
	require.NoError(t, err)

	require.EqualValues(t, 1, tree.ChildrenCount(0))
	require.EqualValues(t, 1, tree.Child(0, 0))
	require.EqualValues(t, -1, tree.Child(0, 1))   // out of range index
	require.EqualValues(t, -1, tree.Child(99, 0))  // out of range exit
	require.EqualValues(t, 0, tree.ChildrenCount(99))
	require.EqualValues(t, -1, tree.Parent(99))
}

func TestLoad_DuplicateParentLastWins(t *testing.T) {
	// exit 2's parent is set first to 0, then overridden to 1.
	tree, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("3 0")),
		branchtree.WithEdgesReader(strings.NewReader("0 2\n1 2\n")),
	)
	require.NoError(t, err)
	require.EqualValues(t, 1, tree.Parent(2))
	// The prefix must follow the same last-wins parent, not the stale
	// edge-list child link under the superseded parent 0.
	require.Equal(t, []int32{1, 2}, tree.Prefix(2))
	require.EqualValues(t, 0, tree.ChildrenCount(0))
	require.EqualValues(t, 1, tree.ChildrenCount(1))
}

func TestLoad_RejectsMalformedMeta(t *testing.T) {
	_, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("not-a-number 2")),
		branchtree.WithEdgesReader(strings.NewReader("")),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, branchtree.ErrMetaMalformed))
}

func TestLoad_RejectsMalformedEdges(t *testing.T) {
	_, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("2 0")),
		branchtree.WithEdgesReader(strings.NewReader("0 nope\n")),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, branchtree.ErrEdgesMalformed))
}

func TestLoad_RejectsOutOfRangeEdge(t *testing.T) {
	_, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("2 0")),
		branchtree.WithEdgesReader(strings.NewReader("0 99\n")),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, branchtree.ErrExitOutOfRange))
}

func TestLoad_RejectsTooManyExits(t *testing.T) {
	_, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("10 0")),
		branchtree.WithEdgesReader(strings.NewReader("")),
		branchtree.WithMaxExits(15), // 2*10=20 > 15
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, branchtree.ErrTooManyExits))
}

func TestLoad_RejectsCycle(t *testing.T) {
	// 0 -> 1 -> 0 is a cycle with no self-parented root in the cycle.
	_, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("2 0")),
		branchtree.WithEdgesReader(strings.NewReader("0 1\n1 0\n")),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, branchtree.ErrCycle))
}

func TestLoad_AllExitsAreRootsWhenNoEdges(t *testing.T) {
	tree, err := branchtree.Load(
		branchtree.WithMetaReader(strings.NewReader("4 0")),
		branchtree.WithEdgesReader(strings.NewReader("")),
	)
	require.NoError(t, err)
	for e := int32(0); e < tree.NumExits(); e++ {
		require.Equal(t, e, tree.Parent(e))
		require.EqualValues(t, 1, tree.Depth(e))
	}
}
