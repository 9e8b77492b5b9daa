package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalbench/dsu"
)

func TestNew_Singletons(t *testing.T) {
	d := dsu.New(5)

	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i))
		assert.Zero(t, d.Rank(i))
	}
}

func TestNew_Empty(t *testing.T) {
	d := dsu.New(0)
	assert.Zero(t, d.Len())
	assert.Zero(t, d.Count())
	assert.Panics(t, func() { d.Find(0) })
}

func TestNew_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { dsu.New(-1) })
}

func TestFind_OutOfRangePanics(t *testing.T) {
	d := dsu.New(3)
	assert.PanicsWithValue(t, "dsu: index 3 out of range [0,3)", func() { d.Find(3) })
	assert.Panics(t, func() { d.Find(-1) })
	assert.Panics(t, func() { d.Union(0, 7) })
}

// TestUnion_ByRank locks in which root survives a merge.
func TestUnion_ByRank(t *testing.T) {
	d := dsu.New(4)

	// Equal ranks: y's root goes under x's root, x's root rank grows.
	require.True(t, d.Union(0, 1))
	assert.Equal(t, 0, d.Find(1))
	assert.Equal(t, 1, d.Rank(0))

	// Lower rank (2, rank 0) attaches under higher rank (0, rank 1),
	// regardless of argument order.
	require.True(t, d.Union(2, 0))
	assert.Equal(t, 0, d.Find(2))
	assert.Equal(t, 1, d.Rank(2))

	require.True(t, d.Union(0, 3))
	assert.Equal(t, 0, d.Find(3))
	assert.Equal(t, 1, d.Count())
}

func TestUnion_Idempotent(t *testing.T) {
	d := dsu.New(6)
	require.True(t, d.Union(1, 2))
	roots := snapshot(d)
	count := d.Count()

	assert.False(t, d.Union(1, 2))
	assert.False(t, d.Union(2, 1))
	assert.Equal(t, roots, snapshot(d))
	assert.Equal(t, count, d.Count())
}

// TestFind_DeepChain builds chains 3→2→0 and 7→6→4→0 via equal-rank unions
// of pairs and checks roots and rank through them.
func TestFind_DeepChain(t *testing.T) {
	d := dsu.New(8)
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(0, 2) // 2 under 0, chain 3→2→0
	d.Union(4, 5)
	d.Union(6, 7)
	d.Union(4, 6)
	d.Union(0, 4) // 4 under 0, chain 7→6→4→0

	assert.Equal(t, 3, d.Rank(0))
	assert.Equal(t, 0, d.Find(7))
	assert.Equal(t, 0, d.Find(6))
	assert.True(t, d.Connected(3, 7))
}

// TestPartitionInvariant compares the DSU against a naive labelling for a
// random sequence of unions.
func TestPartitionInvariant(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	d := dsu.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for k := 0; k < 150; k++ {
		x, y := r.Intn(n), r.Intn(n)
		d.Union(x, y)
		lx, ly := label[x], label[y]
		for i := range label {
			if label[i] == ly {
				label[i] = lx
			}
		}
	}

	classes := make(map[int]struct{})
	for i := 0; i < n; i++ {
		classes[label[i]] = struct{}{}
		for j := i + 1; j < n; j++ {
			assert.Equal(t, label[i] == label[j], d.Connected(i, j), "pair %d,%d", i, j)
		}
	}
	assert.Equal(t, len(classes), d.Count())
	assert.Len(t, distinctRoots(d), d.Count())
}

func snapshot(d *dsu.DisjointSet) []int {
	out := make([]int, d.Len())
	for i := range out {
		out[i] = d.Find(i)
	}

	return out
}

func distinctRoots(d *dsu.DisjointSet) map[int]struct{} {
	roots := make(map[int]struct{})
	for i := 0; i < d.Len(); i++ {
		roots[d.Find(i)] = struct{}{}
	}

	return roots
}
