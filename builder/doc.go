// Package builder provides deterministic graph constructors for tests,
// benchmarks and the `kruskal generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, gopts, bopts, cons...): creates core.NewGraph(n) and applies constructors in order.
//     – Constructor: func(g *core.Graph, cfg builderConfig) error.
//   - Topologies (over all vertices 0..n-1):
//     – Path()             P_n, n ≥ 2.
//     – Cycle()            C_n, n ≥ 3.
//     – Star()             hub 0 with n-1 spokes, n ≥ 2.
//     – Complete()         K_n, n ≥ 1.
//     – RandomTree()       random spanning tree, needs an RNG for n > 2.
//     – RandomSparse(p)    G(n,p), needs an RNG for 0 < p < 1.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand: RNG for stochastic builders and weight functions.
//     – WithWeightFn and the WithConstantWeight / WithUniformWeight / WithIntegerWeight shorthands.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors wrap the package sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
//
// Constructors compose: RandomTree followed by RandomSparse(p) yields a
// connected random graph, the usual fixture for MST tests.
package builder
