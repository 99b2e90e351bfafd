// Package core provides the weighted graph model consumed by the step-wise
// shortest-path solver and its collaborators.
//
// The Graph G = (V,E) is a mapping from VertexID to Vertex, where every
// Vertex owns an ordered list of outgoing edges:
//
//   - Directed by default; symmetric graphs are produced by the Builder
//     (WithSymmetric) which mirrors every edge into the target's list.
//   - Neighbour order is preserved exactly as supplied. Algorithms that walk
//     a vertex's edges one at a time (the dijkstra stepper) expose this order
//     to their observers.
//   - Immutable after construction: no mutating method is exported on Graph.
//     NewGraph and Clone deep-copy their input, so a caller that keeps the
//     original map cannot alter a graph that has been handed out.
//   - Deterministic enumeration: Vertices() returns IDs in ascending order.
//
// Core Methods:
//
//	// Construction
//	NewGraph(vertices map[VertexID]Vertex) (*Graph, error) // O(V+E)
//	NewBuilder(opts ...GraphOption) *Builder               // O(1)
//	(*Builder).AddVertex(id) / AddEdge(from, to, w) / Build()
//
//	// Query
//	Lookup(id VertexID) (Vertex, error)        // O(deg(v))
//	Neighbours(id VertexID) ([]Edge, error)    // O(deg(v))
//	HasVertex(id VertexID) bool                // O(1)
//	Vertices() []VertexID                      // O(V·log V)
//	Len() int, EdgeCount() int                 // O(1), O(V)
//
//	// Contract checks & copies
//	Validate() error                           // O(V+E)
//	Clone() *Graph                             // O(V+E)
//
// Errors:
//
//	ErrNilGraph        – nil *Graph passed where a graph is required
//	ErrVertexNotFound  – missing vertex (lookup, or an edge target)
//	ErrNegativeWeight  – an edge weight below zero
//	ErrIDMismatch      – map key disagrees with Vertex.ID
//
// Duplicate edges, self-loops and asymmetric weights are permitted; they
// simply change what a shortest-path run does.
package core
