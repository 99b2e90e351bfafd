// File: builder.go
// Role: Incremental construction of a Graph.
// Determinism:
//   - Edges are appended in call order; Build preserves that order per vertex.
// Concurrency:
//   - A Builder is not safe for concurrent use. The Graph it produces is.

package core

import "fmt"

// GraphOption configures a Builder before any vertex is added.
type GraphOption func(b *Builder)

// WithSymmetric makes every AddEdge(from, to, w) also append the mirror edge
// to→from with the same weight. Self-loops are stored once.
func WithSymmetric() GraphOption {
	return func(b *Builder) { b.symmetric = true }
}

// Builder accumulates vertices and ordered edges and produces an immutable Graph.
type Builder struct {
	symmetric bool // mirror every edge
	vertices  map[VertexID]*Vertex
}

// NewBuilder creates an empty Builder. By default edges are directed.
// Complexity: O(len(opts)).
func NewBuilder(opts ...GraphOption) *Builder {
	b := &Builder{vertices: make(map[VertexID]*Vertex)}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Symmetric reports whether the builder mirrors edges.
func (b *Builder) Symmetric() bool { return b.symmetric }

// AddVertex inserts id if missing (idempotent).
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(id VertexID) {
	if _, ok := b.vertices[id]; ok {
		return
	}
	b.vertices[id] = &Vertex{ID: id}
}

// AddEdge appends from→to with the given weight, creating missing endpoints.
// When the builder is symmetric the mirror edge is appended to "to" as well.
//
// Errors:
//   - ErrNegativeWeight: weight < 0; nothing is added.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to VertexID, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}
	b.AddVertex(from)
	b.AddVertex(to)

	src := b.vertices[from]
	src.Neighbours = append(src.Neighbours, Edge{To: to, Weight: weight})
	if b.symmetric && from != to {
		dst := b.vertices[to]
		dst.Neighbours = append(dst.Neighbours, Edge{To: from, Weight: weight})
	}

	return nil
}

// Build returns a Graph holding a deep copy of the accumulated topology.
// The Builder stays usable; later additions do not affect graphs already built.
// Complexity: O(V + E).
func (b *Builder) Build() *Graph {
	g := &Graph{vertices: make(map[VertexID]Vertex, len(b.vertices))}
	for id, v := range b.vertices {
		g.vertices[id] = v.clone()
		g.edges += len(v.Neighbours)
	}

	return g
}
