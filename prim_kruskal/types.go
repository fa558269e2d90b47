// Package prim_kruskal defines configuration options, the Result type and
// sentinel errors for minimum spanning forest computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/kruskal/core"
)

// ErrInvalidGraph indicates that no graph was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not connected, so the result is a
// spanning forest rather than a tree. Returned only with WithRequireConnected.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (Kruskal, full scan, forests allowed).
//
// Fields:
//
//	Method           string - one of MethodPrim or MethodKruskal.
//	Root             int    - start vertex for Prim; ignored by Kruskal.
//	EarlyExit        bool   - Kruskal stops once V-1 edges are accepted.
//	RequireConnected bool   - a forest result is returned with ErrDisconnected.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// EarlyExit stops Kruskal's scan once the tree is complete.
	EarlyExit bool

	// RequireConnected turns a spanning forest into an ErrDisconnected result.
	RequireConnected bool
}

// Option configures MSTOptions. All Option functions modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithEarlyExit toggles stopping Kruskal after V-1 accepted edges.
// The result is identical; only the number of inspected edges changes.
func WithEarlyExit(on bool) Option {
	return func(opts *MSTOptions) {
		opts.EarlyExit = on
	}
}

// WithRequireConnected makes a disconnected input an error.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) {
		opts.RequireConnected = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method           = MethodKruskal
//	– Root             = 0 (ignored by Kruskal)
//	– EarlyExit        = false (every edge is inspected)
//	– RequireConnected = false (forests are valid results).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

func resolveOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is a minimum spanning forest.
type Result struct {
	// Edges holds the accepted edges in acceptance order (From < To).
	Edges []core.Edge

	// Total is the sum of accepted weights, accumulated in acceptance order.
	Total float64

	// Vertices is the vertex count of the input graph.
	Vertices int
}

// Components returns the number of trees in the forest: V - |Edges|.
func (r Result) Components() int { return r.Vertices - len(r.Edges) }

// Spanning reports whether the result is a single tree over all vertices.
// An empty graph counts as spanning.
func (r Result) Spanning() bool { return r.Components() <= 1 }

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– MethodPrim:    calls Prim(graph, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Result, error) {
	// Dispatch by method name
	switch o := resolveOptions(opts); o.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return Result{}, ErrUnknownMethod
	}
}

// finish applies the RequireConnected policy to a computed forest.
func finish(res Result, o MSTOptions) (Result, error) {
	if o.RequireConnected && !res.Spanning() {
		return res, ErrDisconnected
	}

	return res, nil
}
