// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices cfg.id(0..n-1) in ascending order.
//   - Emits every ordered pair (i,j), i≠j, in (i asc, j asc) order with
//     weight cfg.weightFn(cfg.rng). A symmetric core.Builder additionally
//     mirrors each edge, doubling the edge count.
//
// Complexity:
//   - Time: O(n²) edges emission. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete digraph over n vertices.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			b.AddVertex(cfg.id(i))
		}

		var (
			i, j int
			u, v core.VertexID
			w    int64
		)
		for i = 0; i < n; i++ {
			u = cfg.id(i)
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				v = cfg.id(j)
				w = cfg.weightFn(cfg.rng)
				if err := b.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}
