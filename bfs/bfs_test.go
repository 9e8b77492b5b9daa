package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalbench/bfs"
	"github.com/katalvlaran/kruskalbench/builder"
	"github.com/katalvlaran/kruskalbench/core"
)

// square: 0—1—2—3—0 plus isolated vertex 4.
func square() []core.Edge {
	return []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1}, {From: 3, To: 0, Weight: 1}}
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(5, square(), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1, bfs.Unreached}, res.Depth)
	assert.Equal(t, []int{bfs.Unreached, 0, 1, 0, bfs.Unreached}, res.Parent)
	assert.False(t, res.Reached(4))

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	edges, err := builder.Build([]builder.BuilderOption{builder.WithConstantWeight(1)}, builder.Cycle(8))
	require.NoError(t, err)

	res, err := bfs.BFS(8, edges, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 7, 2, 6}, res.Order)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(5, square(), 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(3, square(), 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = bfs.BFS(5, square(), 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(5, square(), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(5, square(), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	k, err := bfs.Components(5, square())
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	k, err = bfs.Components(0, nil)
	require.NoError(t, err)
	assert.Zero(t, k)

	k, err = bfs.Components(3, []core.Edge{{From: 1, To: 1, Weight: 4}}) // loop only
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	labels, k, err := bfs.Labels(6, []core.Edge{{From: 4, To: 5, Weight: 1}, {From: 0, To: 2, Weight: 1}})
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.Equal(t, []int{0, 1, 0, 2, 3, 3}, labels)

	_, err = bfs.Components(-1, nil)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

// TestComponents_Tree: a generated tree is one component.
func TestComponents_Tree(t *testing.T) {
	edges, err := builder.Generate(builder.ModeTree, 100, 0, builder.WithSeed(3))
	require.NoError(t, err)

	k, err := bfs.Components(100, edges)
	require.NoError(t, err)
	assert.Equal(t, 1, k)
}

func TestReachable(t *testing.T) {
	edges := []core.Edge{{From: 4, To: 5, Weight: 1}, {From: 0, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 7}}

	got, err := bfs.Reachable(6, edges, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 0}, got)

	got, err = bfs.Reachable(6, edges, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	_, err = bfs.Reachable(6, edges, 6)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.Reachable(2, edges, 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestLabels_MatchReachable: two vertices share a label iff one reaches the other.
func TestLabels_MatchReachable(t *testing.T) {
	const n = 40
	edges, err := builder.Generate(builder.ModeRandom, n, 30, builder.WithSeed(11))
	require.NoError(t, err)

	labels, k, err := bfs.Labels(n, edges)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for u := 0; u < n; u++ {
		reach, err := bfs.Reachable(n, edges, u)
		require.NoError(t, err)
		in := make([]bool, n)
		for _, v := range reach {
			in[v] = true
		}
		for v := 0; v < n; v++ {
			assert.Equal(t, in[v], labels[u] == labels[v], "u=%d v=%d", u, v)
		}
		seen[labels[u]] = true
	}
	assert.Len(t, seen, k)
}
