// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus
//       vertex range checks shared by every method taking an index.
// Determinism:
//   - Edges() walks vertices ascending and neighbors in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the undirected edge {from, to} with the given weight.
//
// Steps:
//  1. Validate both endpoints lie in [0, V) and weight is not NaN.
//  2. On a simple graph, reject from == to and an existing {from, to}.
//  3. Append (to, weight) to adjacency[from] and (from, weight) to
//     adjacency[to]. A self-loop therefore appears twice in adjacency[from].
//
// Complexity: O(1) amortized; O(deg(from)) on a simple graph.
// Concurrency: acquires mu write lock.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Input validation, before any slice access
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	if math.IsNaN(weight) {
		return fmt.Errorf("edge %d-%d: %w", from, to, ErrBadWeight)
	}

	// 2) Simple-graph constraints
	if g.simple {
		if from == to {
			return fmt.Errorf("edge %d-%d: %w", from, to, ErrLoopNotAllowed)
		}
		for _, nb := range g.adjacency[from] {
			if nb.To == to {
				return fmt.Errorf("edge %d-%d: %w", from, to, ErrMultiEdgeNotAllowed)
			}
		}
	}

	// 3) Link adjacency, mirrored for the other endpoint
	g.adjacency[from] = append(g.adjacency[from], Neighbor{To: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Neighbor{To: from, Weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge {from, to} exists.
// Out-of-range indices report false.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkVertex(from) != nil || g.checkVertex(to) != nil {
		return false
	}
	for _, nb := range g.adjacency[from] {
		if nb.To == to {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of edges added, parallel edges and loops included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges flattens the adjacency list into one Edge per undirected edge.
//
// For u = 0..V-1 and each neighbor (v, w) of u in insertion order, the edge
// (u, v, w) is emitted only when u < v. Since every edge is stored at both
// endpoints, this yields each edge exactly once; parallel edges stay
// separate and self-loops are dropped.
//
// Complexity: O(V + E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbs := range g.adjacency {
		for _, nb := range nbs {
			if u < nb.To {
				out = append(out, Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}

	return out
}

// checkVertex validates that id lies in [0, V). Caller holds mu.
func (g *Graph) checkVertex(id int) error {
	if id < 0 || id >= len(g.adjacency) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", id, len(g.adjacency), ErrVertexOutOfRange)
	}

	return nil
}
