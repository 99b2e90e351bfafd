// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the result.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// Constructor applies a deterministic topology mutation to b using the
// resolved builderConfig. Constructors MUST validate parameters before
// touching b and preserve determinism for the same config and call order.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// returns the frozen graph. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(V+E) to freeze.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on call.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}
