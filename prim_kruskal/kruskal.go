// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces the edges of a minimum spanning forest.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/dsu"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : only with WithRequireConnected, when V > 1 and the
//     graph has more than one component. The forest is still returned.
//
// Steps:
//  1. Validate graph != nil.
//  2. Collect edges via graph.Edges() (one per undirected edge, From < To).
//  3. Sort edges by ascending Weight with SortEdges (stable).
//  4. Run Select over the sorted edges.
//
// Complexity: O(E log E + E·α(V)) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate that graph is non-nil.
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	o := resolveOptions(opts)

	// 2. Extract the canonical edge list.
	edges := graph.Edges()

	// 3. Order by weight; ties keep extraction order.
	SortEdges(edges)

	// 4. Greedy selection over a fresh DSU.
	res := Select(graph.VertexCount(), edges, WithEarlyExit(o.EarlyExit))

	return finish(res, o)
}

// SortEdges sorts edges in place by ascending weight.
// The sort is stable, so equal weights keep their relative input order.
func SortEdges(edges []core.Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
}

// Select runs Kruskal's greedy loop over edges already sorted by weight.
//
// For each edge (u, v, w): if Find(u) == Find(v) the edge would close a
// cycle and is discarded; otherwise it is appended to the result, w is
// added to the total and the two sets are merged. Every edge is inspected
// unless WithEarlyExit(true) is given, in which case the loop stops once
// n-1 edges are accepted.
//
// Every endpoint must lie in [0, n); edges from core.Graph.Edges always do.
func Select(n int, sorted []core.Edge, opts ...Option) Result {
	o := resolveOptions(opts)
	ds := dsu.New(n)

	res := Result{Vertices: ds.Len()}
	for _, e := range sorted {
		ru, rv := ds.Find(e.From), ds.Find(e.To)
		if ru == rv {
			// Both endpoints already in one tree.
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		ds.Union(ru, rv)

		if o.EarlyExit && len(res.Edges) == n-1 {
			break
		}
	}

	return res
}
