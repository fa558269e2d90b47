// Package core defines the central Graph, Edge and Neighbor types of the
// MST pipeline and provides thread-safe primitives for building and
// querying an undirected, weighted adjacency list.
//
// This file declares Edge, Neighbor, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeVertexCount  - NewGraphChecked received n < 0.
//	ErrVertexOutOfRange     - vertex index outside [0, V).
//	ErrBadWeight            - NaN weight (breaks the ordering of edges).
//	ErrLoopNotAllowed       - self-loop when the graph is simple.
//	ErrMultiEdgeNotAllowed  - parallel edge when the graph is simple.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a negative vertex count.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a simple graph.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a simple graph.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
//
// Edges produced by Graph.Edges always satisfy From < To.
type Edge struct {
	// From is the lower endpoint index.
	From int

	// To is the higher endpoint index.
	To int

	// Weight is the cost of the edge.
	Weight float64
}

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	// To is the adjacent vertex index.
	To int

	// Weight is the cost of the connecting edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSimple rejects self-loops and parallel edges in AddEdge.
// Without it both are stored as given.
func WithSimple() GraphOption {
	return func(g *Graph) { g.simple = true }
}

// Graph is an undirected, weighted adjacency list over the vertices 0..V-1.
//
// Every AddEdge call appends one Neighbor to each endpoint's list (two entries
// in the same list for a self-loop), preserving insertion order. mu guards adjacency and
// edgeCount; the vertex count is fixed at construction.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	simple bool // reject loops and parallel edges

	// adjacency[u] lists the neighbors of u in insertion order.
	adjacency [][]Neighbor

	// edgeCount is the number of successful AddEdge calls.
	edgeCount int
}

// NewGraph creates a Graph with n isolated vertices and the given options.
// A negative n yields an empty graph; use NewGraphChecked to surface it.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adjacency: make([][]Neighbor, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewGraphChecked is NewGraph with an explicit error for n < 0.
func NewGraphChecked(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	return NewGraph(n, opts...), nil
}

// Simple reports whether the graph rejects self-loops and parallel edges.
func (g *Graph) Simple() bool { return g.simple }
