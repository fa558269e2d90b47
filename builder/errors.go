// SPDX-License-Identifier: MIT
// Package: kruskal/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; sentinels are never formatted.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that the graph is smaller than the minimum
// the requested constructor supports (Path n≥2, Cycle n≥3, ...).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not finish, e.g. a nil
// constructor was passed to BuildGraph or the graph rejected an edge.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrWeightRange indicates an integer weight range with max < min or a span
// that does not fit in an int.
var ErrWeightRange = errors.New("builder: invalid weight range")
