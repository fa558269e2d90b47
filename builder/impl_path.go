// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// impl_path.go - implementation of Path() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i-(i+1) for i=0..n-2 in ascending order.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/kruskal/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links the vertices into the simple path P_n.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodPath, minPathNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
