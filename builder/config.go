// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - firstID  = 1                    (IDs 1..n, like the reference demo)
//   - rng      = nil                  (pure/deterministic unless seeded)
//   - weightFn = UniformWeightFn(0, DefaultMaxWeight)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathstep/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	firstID  core.VertexID // ID of index 0
	rng      *rand.Rand    // nil means "no randomness"
	weightFn WeightFn      // edge weight generator
}

// defaultFirstID is the ID assigned to index 0.
const defaultFirstID core.VertexID = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		firstID:  defaultFirstID,
		rng:      nil,
		weightFn: UniformWeightFn(0, DefaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor index to a vertex ID.
func (c builderConfig) id(i int) core.VertexID {
	return c.firstID + core.VertexID(i)
}
