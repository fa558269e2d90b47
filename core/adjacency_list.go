package core

// VertexCount returns V, the number of vertices fixed at construction.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// HasVertex reports whether id lies in [0, V).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.checkVertex(id) == nil
}

// Neighbors returns a copy of the adjacency entries of u in insertion order.
//
// Errors:
//   - ErrVertexOutOfRange: if u is outside [0, V).
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	out := make([]Neighbor, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Degree returns the number of adjacency entries of u (a self-loop counts twice).
func (g *Graph) Degree(u int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return 0, err
	}

	return len(g.adjacency[u]), nil
}

// AdjacencyList returns a deep copy of the whole adjacency list, indexed by vertex.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Neighbor, len(g.adjacency))
	for u, nbs := range g.adjacency {
		out[u] = make([]Neighbor, len(nbs))
		copy(out[u], nbs)
	}

	return out
}

// ConnectedComponents groups vertices into connected components using BFS.
// Components are ordered by their smallest vertex; vertices inside a
// component appear in BFS discovery order starting from that vertex.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph) ConnectedComponents() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range g.adjacency[queue[qi]] {
				if !seen[nb.To] {
					seen[nb.To] = true
					queue = append(queue, nb.To)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
