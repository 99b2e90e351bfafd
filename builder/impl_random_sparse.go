// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like digraph: include each ordered pair (i,j), i≠j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   - Stable trial order: i asc, j asc. One Bernoulli draw per pair, then one
//     weight draw for kept pairs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		// 1) Validate parameters before touching the builder.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		// NaN fails both comparisons and is rejected here.
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices in ascending order, so isolated ones still exist.
		for i := 0; i < n; i++ {
			b.AddVertex(cfg.id(i))
		}

		// 3) Trials.
		var (
			i, j int
			u, v core.VertexID
			w    int64
			keep bool
		)
		for i = 0; i < n; i++ {
			u = cfg.id(i)
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				v = cfg.id(j)
				w = cfg.weightFn(rng)
				if err := b.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
