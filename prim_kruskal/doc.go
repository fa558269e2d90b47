// Package prim_kruskal computes minimum spanning forests of an undirected,
// weighted *core.Graph, with Kruskal’s algorithm as the primary method and
// Prim’s algorithm as an independent cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     For a disconnected graph the same greedy rule yields a minimum spanning forest:
//     one minimum spanning tree per connected component, |V| − k edges for k components.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: extract every undirected edge once (From < To), sort by weight, then walk the
//     list keeping every edge whose endpoints are still in different sets of a dsu.DisjointSet.
//
//   - Select(n, sorted, opts...) exposes the greedy loop on its own for callers that
//     already hold a sorted edge list.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: Edges() walks vertices ascending and neighbors in insertion order; SortEdges
//     is stable, so ties break by that order and the accepted sequence is reproducible, including
//     the floating-point total.
//
//   - Prim(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: grow a tree from WithRoot (default 0) with a min-heap of candidate edges, then
//     restart from the lowest unvisited vertex until every component is covered.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Both methods return the same total weight for any input (the MST weight does not depend on
// tie-breaking), though the edge sets may differ when weights repeat.
//
// Error Conditions
//
//	- ErrInvalidGraph  - graph is nil.
//	- ErrDisconnected  - WithRequireConnected was given and the result is a forest
//	                     (the forest itself is still returned).
//	- ErrUnknownMethod - Compute received a method other than MethodKruskal / MethodPrim.
//	- core.ErrVertexOutOfRange (Prim only) - root outside [0, V).
//
// Parallel edges are kept as separate candidates; the heavier one is rejected as a
// cycle once the lighter one is accepted. Self-loops never appear in the candidate list.
package prim_kruskal
