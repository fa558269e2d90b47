// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go and operate on all vertices 0..n-1 of g.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kruskal/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors (no panics) and preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately.
//
// Complexity: O(n + len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraphChecked(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrTooFewVertices, err)
	}

	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge adds one edge with the next configured weight, wrapping failures.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// requireVertices validates the graph has at least min vertices.
func requireVertices(g *core.Graph, method string, min int) error {
	if n := g.VertexCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
