// Package dsu implements a fixed-size disjoint-set (union-find) structure
// over the integers 0..n-1.
package dsu

// DisjointSet tracks a partition of 0..n-1 into disjoint sets.
//
// parent[i] == i marks a root (the representative of its set). The parent
// graph is always a forest: Union only ever links a root under another root,
// and Find only repoints nodes to the root they already reach.
type DisjointSet struct {
	parent []int
	count  int // number of disjoint sets remaining
}

// New constructs a DisjointSet of n singleton sets. A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i // every element is its own root
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of the set containing i and compresses
// the path: every node visited on the way is repointed directly at the root.
//
// i must lie in [0, Len()); otherwise Find panics like any slice index.
// Complexity: amortized O(log n) without union by rank.
func (d *DisjointSet) Find(i int) int {
	// First pass: walk up to the root.
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: repoint the whole path at the root.
	for i != root {
		i, d.parent[i] = d.parent[i], root
	}

	return root
}

// Union merges the sets containing x and y by attaching the root of x under
// the root of y. It reports whether a merge happened; false means x and y
// were already connected.
func (d *DisjointSet) Union(x, y int) bool {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		// Same set: joining x and y would close a cycle.
		return false
	}
	d.parent[rootX] = rootY
	d.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Sets returns the members of every set, grouped by representative and
// ordered by each set's smallest element. Members are ascending.
// Complexity: O(n α(n)).
func (d *DisjointSet) Sets() [][]int {
	index := make(map[int]int, d.count) // root -> position in out
	out := make([][]int, 0, d.count)
	for i := range d.parent {
		r := d.Find(i)
		pos, ok := index[r]
		if !ok {
			pos = len(out)
			index[r] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], i)
	}

	return out
}
