package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// buildGraph creates a directed graph from (from, to, weight) triples and
// adds the listed isolated vertices.
func buildGraph(t *testing.T, triples []builder.Triple, isolated ...core.VertexID) *core.Graph {
	t.Helper()
	cons := []builder.Constructor{builder.Edges(triples...)}
	if len(isolated) > 0 {
		cons = append(cons, builder.Isolated(isolated...))
	}
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// scenarioGraph returns the five-vertex reference graph.
func scenarioGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Scenario())
	require.NoError(t, err)

	return g
}

// bellmanFord is the brute-force oracle: |V|-1 rounds of relaxing every edge.
func bellmanFord(t *testing.T, g *core.Graph, source core.VertexID) map[core.VertexID]int64 {
	t.Helper()
	dist := make(map[core.VertexID]int64, g.Len())
	for _, id := range g.Vertices() {
		dist[id] = dijkstra.Infinity
	}
	dist[source] = 0

	for round := 0; round < g.Len()-1; round++ {
		changed := false
		for _, u := range g.Vertices() {
			if dist[u] == dijkstra.Infinity {
				continue
			}
			nb, err := g.Neighbours(u)
			require.NoError(t, err)
			for _, e := range nb {
				if d := dist[u] + e.Weight; d < dist[e.To] {
					dist[e.To] = d
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// minWeight returns the cheapest u→v edge weight, failing if none exists.
func minWeight(t *testing.T, g *core.Graph, u, v core.VertexID) int64 {
	t.Helper()
	nb, err := g.Neighbours(u)
	require.NoError(t, err)
	best, found := int64(0), false
	for _, e := range nb {
		if e.To == v && (!found || e.Weight < best) {
			best, found = e.Weight, true
		}
	}
	require.True(t, found, "no edge %d→%d", u, v)

	return best
}

// randomGraphs yields seeded graphs of varying density for property tests.
func randomGraphs(t *testing.T) []*core.Graph {
	t.Helper()
	var out []*core.Graph
	for seed := int64(1); seed <= 6; seed++ {
		dense, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.Complete(int(seed)+3))
		require.NoError(t, err)
		sparse, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithMaxWeight(20)},
			builder.RandomSparse(12, 0.2))
		require.NoError(t, err)
		out = append(out, dense, sparse)
	}

	return out
}
