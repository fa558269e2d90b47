// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) and RandomTree() constructors.
//
// RandomSparse:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j, independently with prob p.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Stable trial order: i asc, j asc (j>i).
//
// RandomTree:
//   - Uniform attachment: vertex i (i ≥ 1) links to a vertex drawn from [0, i).
//   - The result is always connected with exactly n-1 edges.
//   - cfg.rng must be non-nil when n > 2 (else ErrNeedRandSource).
//
// Complexity:
//   - RandomSparse: O(n²) Bernoulli trials.
//   - RandomTree:   O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/kruskal/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomTree        = "RandomTree"
	minRandomSparseVertices = 1
	minRandomTreeVertices   = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples edges over all vertex pairs
// with independent probability p. Pairs that already have an edge are skipped,
// so RandomSparse after RandomTree yields a simple connected graph.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := requireVertices(g, methodRandomSparse, minRandomSparseVertices); err != nil {
			return err
		}
		if !(p >= probMin && p <= probMax) { // also rejects NaN
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trial per unordered pair.
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				take := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					take = cfg.rng.Float64() < p
				}
				if !take || g.HasEdge(i, j) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor that adds a random spanning tree.
func RandomTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodRandomTree, minRandomTreeVertices); err != nil {
			return err
		}
		n := g.VertexCount()
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTree, ErrNeedRandSource)
		}
		for i := 1; i < n; i++ {
			parent := 0
			if cfg.rng != nil {
				parent = cfg.rng.Intn(i)
			}
			if err := addEdge(g, cfg, methodRandomTree, parent, i); err != nil {
				return err
			}
		}

		return nil
	}
}
