// File: methods.go
// Role: Read-only queries and contract checks on Graph.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//   - Neighbours() preserves the supplied edge order.
// Concurrency:
//   - Graph is never mutated after construction; all methods are safe for
//     concurrent readers.

package core

import (
	"fmt"
	"sort"
)

// Lookup returns a copy of the vertex with the given ID.
//
// Errors:
//   - ErrNilGraph: if g is nil.
//   - ErrVertexNotFound: if id is absent (wrapped with the ID).
//
// Complexity: O(deg(v)) for the defensive copy of the edge list.
func (g *Graph) Lookup(id VertexID) (Vertex, error) {
	if g == nil {
		return Vertex{}, ErrNilGraph
	}
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return v.clone(), nil
}

// Neighbours returns the ordered outgoing edges of id.
// Errors and complexity follow Lookup.
func (g *Graph) Neighbours(id VertexID) ([]Edge, error) {
	v, err := g.Lookup(id)
	if err != nil {
		return nil, err
	}

	return v.Neighbours, nil
}

// HasVertex reports whether id is present. A nil graph holds no vertices.
func (g *Graph) HasVertex(id VertexID) bool {
	if g == nil {
		return false
	}
	_, ok := g.vertices[id]

	return ok
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.vertices)
}

// EdgeCount returns the number of stored edges, counting mirrored edges of a
// symmetric graph twice (once per direction).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edges
}

// Vertices returns all vertex IDs sorted ascending.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	if g == nil {
		return nil
	}
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Validate checks the caller contract a shortest-path run relies on.
//
// Implementation:
//   - Walk vertices in ascending ID order and their edges in stored order, so
//     the first violation reported is deterministic.
//   - Every edge target must exist (ErrVertexNotFound).
//   - Every weight must be non-negative (ErrNegativeWeight).
//
// Complexity: O(V log V + E).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}

	var (
		id VertexID
		e  Edge
	)
	for _, id = range g.Vertices() {
		for _, e = range g.vertices[id].Neighbours {
			if _, ok := g.vertices[e.To]; !ok {
				return fmt.Errorf("%w: edge %d→%d targets a missing vertex", ErrVertexNotFound, id, e.To)
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, id, e.To, e.Weight)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of g. A nil graph clones to nil.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{vertices: make(map[VertexID]Vertex, len(g.vertices)), edges: g.edges}
	for id, v := range g.vertices {
		out.vertices[id] = v.clone()
	}

	return out
}
