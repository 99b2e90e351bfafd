// SPDX-License-Identifier: MIT
// Package: pathstep/builder

// Package builder produces deterministic weighted graphs for the step-wise
// shortest-path solver: a fixed demonstration scenario, explicit edge lists,
// and seeded random digraphs.
//
// One orchestrator, many constructors:
//
//	g, err := builder.BuildGraph(
//	    nil,                                   // core.GraphOption (e.g. core.WithSymmetric())
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithMaxWeight(10)},
//	    builder.Complete(50),
//	)
//
// Constructors:
//
//   - Scenario()          - five vertices, nine directed edges, the reference demo.
//   - Edges(triples...)   - explicit edge list in the given order.
//   - Complete(n)         - every ordered pair (i≠j) over IDs first..first+n-1,
//     weights drawn from the configured WeightFn. This is the generator the
//     visualizer uses by default.
//   - RandomSparse(n, p)  - each ordered pair (i≠j) kept with probability p.
//
// Determinism:
//
//   - Vertex IDs are assigned in ascending index order starting at cfg.firstID.
//   - Edge emission order is (i asc, j asc); for a fixed seed the graph,
//     including each vertex's neighbour order, is identical across runs.
//
// Weights:
//
//   - Default weight policy is uniform in [0, DefaultMaxWeight), matching the
//     original visualizer. Zero-weight edges are legal.
//   - Constructors never produce negative weights; a WeightFn returning one
//     surfaces as core.ErrNegativeWeight wrapped with the constructor name.
//
// Errors:
//
//	ErrTooFewVertices      - n below the constructor's minimum.
//	ErrInvalidProbability  - p outside [0,1].
//	ErrNeedRandSource      - a stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed     - nil constructor or a failing inner step.
package builder
