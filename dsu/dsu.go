package dsu

import "fmt"

// DisjointSet partitions [0, Len()) into disjoint components.
// The zero value is an empty set; use New to size it.
type DisjointSet struct {
	parent []int // parent[i] == i iff i is a root
	rank   []int // upper bound of tree height, meaningful at roots only
	count  int   // number of disjoint components
}

// New returns a DisjointSet of size singleton components.
// Panics if size < 0.
// Complexity: O(size).
func New(size int) *DisjointSet {
	if size < 0 {
		panic(fmt.Sprintf("dsu: New(%d): negative size", size))
	}
	d := &DisjointSet{
		parent: make([]int, size),
		rank:   make([]int, size),
		count:  size,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint components.
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the root of i's component and compresses the path from i.
// Panics if i is outside [0, Len()).
// Complexity: amortised O(α(n)).
func (d *DisjointSet) Find(i int) int {
	d.check(i)

	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for i != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

// Union merges the components of x and y by rank.
// It reports whether a merge happened; false means x and y were already
// in the same component and nothing changed.
// Panics if x or y is outside [0, Len()).
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true
}

// Connected reports whether x and y share a component.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Rank returns the rank of i's root.
func (d *DisjointSet) Rank(i int) int {
	return d.rank[d.Find(i)]
}

func (d *DisjointSet) check(i int) {
	if i < 0 || i >= len(d.parent) {
		panic(fmt.Sprintf("dsu: index %d out of range [0,%d)", i, len(d.parent)))
	}
}
