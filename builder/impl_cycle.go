// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// impl_cycle.go - implementation of Cycle() constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//   • Weight per edge from cfg.weightFn(cfg.rng).
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/kruskal/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that closes the vertices into the simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := requireVertices(g, methodCycle, minCycleNodes); err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
