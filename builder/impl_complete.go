// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every unordered pair {i,j}, i<j, with i ascending then j ascending.
//
// Complexity: O(n²) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/kruskal/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodComplete, minCompleteNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
