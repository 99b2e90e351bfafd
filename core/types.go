// Package core defines the VertexID, Edge, Vertex and Graph types together
// with the sentinel errors shared by every package that reads a graph.
//
// This file declares the data model, GraphOption, the sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph        - graph pointer is nil.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrNegativeWeight  - an edge carries a weight below zero.
//	ErrIDMismatch      - a map key disagrees with the Vertex.ID it holds.
package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrIDMismatch indicates that a vertex was stored under a key that is not its own ID.
	ErrIDMismatch = errors.New("core: vertex key does not match vertex ID")
)

// VertexID identifies a vertex. IDs are totally ordered; the ordering is the
// tie-break used wherever an algorithm must choose between equal candidates.
type VertexID int

// String renders the ID in base 10.
func (id VertexID) String() string { return strconv.Itoa(int(id)) }

// Edge is an outgoing connection owned by the vertex it originates from.
type Edge struct {
	// To is the destination vertex ID.
	To VertexID

	// Weight is the traversal cost; algorithms in this module require Weight >= 0.
	Weight int64
}

// Vertex is a node together with its ordered outgoing edges.
//
// The order of Neighbours is the order in which an expanding algorithm
// visits them and is therefore observable.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID VertexID

	// Neighbours lists outgoing edges in visitation order.
	Neighbours []Edge
}

// clone returns a deep copy of v whose edge slice is not shared.
func (v Vertex) clone() Vertex {
	out := Vertex{ID: v.ID}
	if len(v.Neighbours) > 0 {
		out.Neighbours = make([]Edge, len(v.Neighbours))
		copy(out.Neighbours, v.Neighbours)
	}

	return out
}

// Graph is an immutable-after-construction weighted graph.
//
// There are no locks: once built, a Graph is only read, so it may be shared
// between goroutines freely.
type Graph struct {
	vertices map[VertexID]Vertex // vertex ID → Vertex (owned copy)
	edges    int                 // total number of stored edges
}

// NewGraph builds a Graph from a caller-supplied mapping.
//
// Implementation:
//   - Stage 1: Reject entries whose key differs from Vertex.ID (ErrIDMismatch).
//   - Stage 2: Deep-copy every vertex so later changes to the input map or its
//     slices cannot reach the returned Graph.
//
// No other validation is performed; call Validate to check edge targets and
// weights when the input comes from an untrusted producer.
//
// Complexity: O(V + E).
func NewGraph(vertices map[VertexID]Vertex) (*Graph, error) {
	g := &Graph{vertices: make(map[VertexID]Vertex, len(vertices))}

	var (
		id VertexID
		v  Vertex
	)
	for id, v = range vertices {
		if id != v.ID {
			return nil, fmt.Errorf("%w: key %d holds vertex %d", ErrIDMismatch, id, v.ID)
		}
		g.vertices[id] = v.clone()
		g.edges += len(v.Neighbours)
	}

	return g, nil
}
