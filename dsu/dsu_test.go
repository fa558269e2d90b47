package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kruskal/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Singletons verifies every element starts as its own representative.
func TestNew_Singletons(t *testing.T) {
	d := dsu.New(5)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 5, d.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i))
	}

	empty := dsu.New(-2)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Count())
	assert.Empty(t, empty.Sets())
}

// TestUnion_AttachesXUnderY checks the root of x ends up under the root of y.
func TestUnion_AttachesXUnderY(t *testing.T) {
	d := dsu.New(4)

	require.True(t, d.Union(0, 1))
	assert.Equal(t, 1, d.Find(0))

	require.True(t, d.Union(2, 0)) // root(2)=2 goes under root(0)=1
	assert.Equal(t, 1, d.Find(2))

	assert.False(t, d.Union(2, 1), "already connected")
	assert.Equal(t, 2, d.Count())
	assert.False(t, d.Connected(3, 0))
}

// TestFind_CompressesPath builds a chain and checks a later union sees flattened pointers.
func TestFind_CompressesPath(t *testing.T) {
	const n = 1000
	d := dsu.New(n)
	// chain: 0 -> 1 -> 2 -> ... -> n-1
	for i := 0; i < n-1; i++ {
		require.True(t, d.Union(i, i+1))
	}
	assert.Equal(t, n-1, d.Find(0))

	assert.Equal(t, 1, d.Count())
	for i := 0; i < n; i++ {
		assert.Equal(t, n-1, d.Find(i))
	}
}

// TestFind_Idempotent checks repeated finds without unions agree.
func TestFind_Idempotent(t *testing.T) {
	d := dsu.New(8)
	d.Union(0, 1)
	d.Union(2, 3)
	d.Union(1, 3)
	for i := 0; i < 8; i++ {
		first := d.Find(i)
		assert.Equal(t, first, d.Find(i))
	}
}

// TestPartitionMatchesUnions compares the DSU against a naive label array
// under a seeded random sequence of unions.
func TestPartitionMatchesUnions(t *testing.T) {
	const n, ops = 64, 200
	r := rand.New(rand.NewSource(42))
	d := dsu.New(n)

	label := make([]int, n) // naive: label[i] is the set id of i
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for k := 0; k < ops; k++ {
		x, y := r.Intn(n), r.Intn(n)
		merged := d.Union(x, y)
		assert.Equal(t, label[x] != label[y], merged)
		if merged {
			relabel(label[x], label[y])
		}
		assert.Equal(t, d.Find(x), d.Find(y), "after Union(x,y) both share a root")

		// spot-check the full partition every few steps
		if k%25 == 0 {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					require.Equal(t, label[i] == label[j], d.Connected(i, j))
				}
			}
		}
	}

	distinct := map[int]bool{}
	for _, l := range label {
		distinct[l] = true
	}
	assert.Equal(t, len(distinct), d.Count())
}

// TestSets groups members by representative.
func TestSets(t *testing.T) {
	d := dsu.New(6)
	d.Union(5, 0)
	d.Union(3, 1)
	d.Union(4, 1)

	assert.Equal(t, [][]int{{0, 5}, {1, 3, 4}, {2}}, d.Sets())
}

// TestFind_PanicsOutOfRange documents the slice-index contract.
func TestFind_PanicsOutOfRange(t *testing.T) {
	d := dsu.New(2)
	assert.Panics(t, func() { d.Find(2) })
	assert.Panics(t, func() { d.Find(-1) })
}
