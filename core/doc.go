// Package core provides a small, thread-safe, undirected weighted graph
// stored as an adjacency list over integer vertices 0..V-1.
//
// The Graph G = (V,E) is the data source of the MST pipeline:
//
//   - Fixed vertex count chosen at construction (NewGraph(n)).
//   - Insertion-ordered adjacency: adjacency[u] lists (neighbor, weight)
//     pairs in the order edges were added; each undirected edge is stored
//     once at each endpoint, so a self-loop appears twice in its list.
//   - Parallel edges and self-loops are kept as given unless the graph is
//     built WithSimple().
//   - Every index is range-checked before any slice access, so malformed
//     input surfaces as ErrVertexOutOfRange instead of a panic.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) *Graph      // O(n)
//	AddEdge(from, to int, weight float64) error      // O(1)†
//	Neighbors(u int) ([]Neighbor, error)             // O(deg(u))
//	Edges() []Edge                                   // O(V+E), one Edge per undirected edge, From < To
//	ConnectedComponents() [][]int                    // O(V+E)
//	VertexCount(), EdgeCount(), HasEdge(), Degree(), AdjacencyList()
//
// † O(deg(from)) for simple graphs, which scan for an existing parallel edge.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency list. Queries take the read
//	lock, so a built graph can be shared between readers.
//
// Quick ASCII example:
//
//	0───1
//	│ ╲ │
//	3   2
//
//	g := core.NewGraph(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 3)
//	_ = g.AddEdge(0, 3, 4)
package core
