// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value is NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) {
		panic("ConstantWeightFn: value is NaN")
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min or either bound is NaN.
// If rng is nil, yields min to maintain a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsNaN(max) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// CheckIntegerRange validates [min, max] for IntegerWeightFn: max ≥ min and
// max-min+1 must not overflow int.
func CheckIntegerRange(min, max int) error {
	if max < min {
		return fmt.Errorf("min=%d > max=%d: %w", min, max, ErrWeightRange)
	}
	if span := max - min; span < 0 || span == math.MaxInt {
		return fmt.Errorf("span of [%d, %d] overflows int: %w", min, max, ErrWeightRange)
	}

	return nil
}

// IntegerWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Integer weights keep generated inputs readable and make ties likely.
// Panics if CheckIntegerRange rejects the range. If rng is nil, yields min.
func IntegerWeightFn(min, max int) WeightFn {
	if err := CheckIntegerRange(min, max); err != nil {
		panic(fmt.Sprintf("IntegerWeightFn: %v", err))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight sets integer weights in [min,max] via IntegerWeightFn.
func WithIntegerWeight(min, max int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(min, max))
}
