// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// impl_star.go - implementation of Star() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; spokes 0-i are emitted for i = 1..n-1.
//
// Complexity: O(n-1) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/kruskal/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor that connects vertex 0 to every other vertex.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodStar, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < g.VertexCount(); i++ {
			if err := addEdge(g, cfg, methodStar, starHub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
