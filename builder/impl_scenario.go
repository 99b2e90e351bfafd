// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_scenario.go - the fixed five-vertex demonstration graph and explicit
// edge lists.
//
// Scenario (directed, neighbour order as listed):
//
//	1→2(5) 1→5(2)
//	2→3(2) 2→4(1)
//	3→4(2)
//	4→5(1) 4→2(1)
//	5→1(2) 5→4(1)
//
// Shortest distances from 1: {1:0, 2:4, 3:6, 4:3, 5:2}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const (
	methodScenario = "Scenario"
	methodEdges    = "Edges"
	methodIsolated = "Isolated"
)

// Triple is one directed edge of an explicit edge list.
type Triple struct {
	From, To core.VertexID
	Weight   int64
}

// scenarioEdges is the reference demo graph. IDs are fixed and ignore cfg.firstID.
var scenarioEdges = []Triple{
	{1, 2, 5}, {1, 5, 2},
	{2, 3, 2}, {2, 4, 1},
	{3, 4, 2},
	{4, 5, 1}, {4, 2, 1},
	{5, 1, 2}, {5, 4, 1},
}

// Scenario returns a Constructor for the five-vertex demonstration graph.
func Scenario() Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := addTriples(b, scenarioEdges); err != nil {
			return fmt.Errorf("%s: %w", methodScenario, err)
		}

		return nil
	}
}

// Edges returns a Constructor that adds the given edges in order.
// An empty list is a no-op.
func Edges(triples ...Triple) Constructor {
	// Copy so later changes to the caller's slice do not alter the constructor.
	own := append([]Triple(nil), triples...)

	return func(b *core.Builder, _ builderConfig) error {
		if err := addTriples(b, own); err != nil {
			return fmt.Errorf("%s: %w", methodEdges, err)
		}

		return nil
	}
}

// Isolated returns a Constructor that adds vertices without edges.
func Isolated(ids ...core.VertexID) Constructor {
	own := append([]core.VertexID(nil), ids...)

	return func(b *core.Builder, _ builderConfig) error {
		if len(own) == 0 {
			return fmt.Errorf("%s: no vertices: %w", methodIsolated, ErrTooFewVertices)
		}
		for _, id := range own {
			b.AddVertex(id)
		}

		return nil
	}
}

// addTriples appends every triple, stopping at the first rejected edge.
func addTriples(b *core.Builder, triples []Triple) error {
	for _, t := range triples {
		if err := b.AddEdge(t.From, t.To, t.Weight); err != nil {
			return fmt.Errorf("AddEdge(%d→%d, w=%d): %w", t.From, t.To, t.Weight, err)
		}
	}

	return nil
}
