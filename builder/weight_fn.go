// Package builder provides the edge-weight generators used by graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultMaxWeight is the exclusive upper bound of the default weight distribution.
const DefaultMaxWeight int64 = 10

// DefaultEdgeWeight is returned by stochastic weight functions when no RNG is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max <= min. With a nil rng it yields DefaultEdgeWeight
// clamped into the interval, so unseeded builds stay deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max <= min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min < max, got min=%d, max=%d", min, max))
	}
	fallback := DefaultEdgeWeight
	if fallback < min || fallback >= max {
		fallback = min
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return fallback
		}

		return min + rng.Int63n(max-min)
	}
}
