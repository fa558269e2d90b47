// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows a tree from a root vertex using a min‐heap and restarts in every
// component the root cannot reach, producing a minimum spanning forest.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/kruskal/core"
)

// Prim computes a minimum spanning forest of an undirected, weighted graph
// by growing outwards from WithRoot (default 0) using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph         : if graph is nil.
//   - core.ErrVertexOutOfRange: if V > 0 and the root is outside [0, V).
//   - ErrDisconnected         : only with WithRequireConnected, when the graph has several components.
//
// Steps:
//  1. Validate graph and root.
//  2. Snapshot the adjacency list once.
//  3. Grow a tree from the root: pop the lightest candidate edge, skip it if
//     its far endpoint is already visited, otherwise accept it and push the
//     far endpoint's edges to unvisited neighbors.
//  4. Repeat step 3 from the lowest unvisited vertex until all are visited.
//
// Accepted edges are reported with From < To, in the order Prim accepts them.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate graph and root.
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	o := resolveOptions(opts)

	adj := graph.AdjacencyList()
	n := len(adj)
	res := Result{Vertices: n}
	if n == 0 {
		return finish(res, o)
	}
	if o.Root < 0 || o.Root >= n {
		return Result{}, fmt.Errorf("prim root %d: %w", o.Root, core.ErrVertexOutOfRange)
	}

	visited := make([]bool, n)
	pq := &edgePQ{}
	heap.Init(pq)

	// grow spans the component of root, appending accepted edges to res.
	grow := func(root int) {
		visited[root] = true
		pushFrom(pq, root, adj[root], visited)
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue
			}
			visited[c.to] = true
			res.Edges = append(res.Edges, normalize(c.from, c.to, c.weight))
			res.Total += c.weight
			pushFrom(pq, c.to, adj[c.to], visited)
		}
	}

	// 3. Root component first, then every component it could not reach.
	grow(o.Root)
	for s := 0; s < n; s++ {
		if !visited[s] {
			grow(s)
		}
	}

	return finish(res, o)
}

// pushFrom pushes every edge from u to an unvisited neighbor.
func pushFrom(pq *edgePQ, u int, nbs []core.Neighbor, visited []bool) {
	for _, nb := range nbs {
		if !visited[nb.To] {
			heap.Push(pq, candidate{from: u, to: nb.To, weight: nb.Weight, seq: pq.next()})
		}
	}
}

func normalize(u, v int, w float64) core.Edge {
	if u > v {
		u, v = v, u
	}

	return core.Edge{From: u, To: v, Weight: w}
}

// candidate is an edge leaving the current tree.
type candidate struct {
	from, to int
	weight   float64
	seq      uint64 // push order, breaks weight ties deterministically
}

// edgePQ implements heap.Interface for a min‐heap of candidates, ordered by weight then push order.
type edgePQ struct {
	items []candidate
	seq   uint64
}

func (pq *edgePQ) next() uint64 {
	pq.seq++

	return pq.seq
}

// Len returns the number of candidates in the priority queue.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less compares by weight, then by push order.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a new candidate to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { pq.items = append(pq.items, x.(candidate)) }

// Pop removes and returns the last element after heap adjustments. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	c := old[n-1]
	pq.items = old[:n-1]

	return c
}
