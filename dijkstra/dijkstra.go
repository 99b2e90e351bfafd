// Package dijkstra implements the step-wise shortest-path Solver.
//
// Notes on implementation choices:
//
//   - The solver keeps its own clone of the graph and caches every vertex's
//     edge list once per (re)initialization, so each Advance reads an owned,
//     immutable slice through an integer cursor.
//   - Advance is an explicit bounded loop: zero-work transitions (Idle with
//     nothing left → Terminated) are taken in the same call, and at most one
//     real unit of work is performed before returning.
//   - Selection scans the unvisited set linearly. There is no heap: the scan
//     is what a visualizer shows, and ties must resolve by lowest ID.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// Solver holds the mutable state of one incremental Dijkstra run.
type Solver struct {
	options Options // configuration (observer hook)

	graph *core.Graph                   // owned clone; never mutated
	adj   map[core.VertexID][]core.Edge // cached ordered edge lists
	order []core.VertexID               // vertex IDs ascending
	table map[core.VertexID]Entry       // distance table
	open  map[core.VertexID]struct{}    // unvisited set
	src   core.VertexID                 // source vertex

	phase   Phase         // state machine position
	current core.VertexID // valid in SelectingVertex / VisitingEdges
	cursor  int           // index into adj[current]; valid in VisitingEdges
	steps   int           // non-noop Advance calls since reset
}

// New creates a Solver over a private copy of g, positioned at Idle with
// source at distance 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must satisfy core.Graph.Validate: every edge target exists
//     (ErrVertexNotFound) and every weight is non-negative
//     (core.ErrNegativeWeight).
//  3. g must contain source (ErrVertexNotFound).
//
// Complexity: O(V log V + E).
func New(g *core.Graph, source core.VertexID, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Solver{options: cfg}
	if err := s.load(g, source); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset reinitializes the distance table and unvisited set for a (possibly
// new) source and returns to Idle. The stored graph is not touched.
//
// Errors:
//   - ErrVertexNotFound if source is not in the graph; the solver is left unchanged.
func (s *Solver) Reset(source core.VertexID) error {
	if !s.graph.HasVertex(source) {
		return fmt.Errorf("dijkstra: source %d: %w", source, ErrVertexNotFound)
	}
	s.init(source)

	return nil
}

// ResetGraph replaces the stored graph with a copy of g and resets to source.
// On error the solver keeps its previous graph and state.
func (s *Solver) ResetGraph(g *core.Graph, source core.VertexID) error {
	return s.load(g, source)
}

// load validates g and source, then installs a clone of g and initializes.
func (s *Solver) load(g *core.Graph, source core.VertexID) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("dijkstra: invalid graph: %w", err)
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("dijkstra: source %d: %w", source, ErrVertexNotFound)
	}

	own := g.Clone()
	order := own.Vertices()
	adj := make(map[core.VertexID][]core.Edge, len(order))
	for _, id := range order {
		// Validate and HasVertex above guarantee every lookup succeeds.
		nb, err := own.Neighbours(id)
		if err != nil {
			return fmt.Errorf("dijkstra: load %d: %w", id, err)
		}
		adj[id] = nb
	}

	s.graph, s.adj, s.order = own, adj, order
	s.init(source)

	return nil
}

// init sets dist[source]=0, every other entry to Infinity, marks all
// vertices unvisited and returns to Idle.
func (s *Solver) init(source core.VertexID) {
	s.src = source
	s.table = make(map[core.VertexID]Entry, len(s.order))
	s.open = make(map[core.VertexID]struct{}, len(s.order))
	for _, id := range s.order {
		s.table[id] = Entry{Distance: Infinity}
		s.open[id] = struct{}{}
	}
	s.table[source] = Entry{Distance: 0}

	s.phase = Idle
	s.current = 0
	s.cursor = 0
	s.steps = 0
}

// Advance performs one micro-step and reports what it did.
//
// Transitions:
//   - Terminated: no-op, returns a Step with ActionNone.
//   - Idle: terminate if nothing is unvisited, otherwise select the
//     minimum-distance unvisited vertex (→ SelectingVertex).
//   - SelectingVertex: place the cursor on the first edge (→ VisitingEdges),
//     or settle an edge-less vertex (→ Idle).
//   - VisitingEdges: relax the edge under the cursor and move the cursor;
//     after the last edge settle the vertex (→ Idle).
//
// An Idle solver left with an empty unvisited set terminates within the
// same call, so the last settling step is immediately followed by IsDone()==true.
func (s *Solver) Advance() Step {
	step := Step{From: s.phase}

work:
	for step.Action == ActionNone {
		switch s.phase {
		case Terminated:
			break work
		case Idle:
			if len(s.open) == 0 {
				s.phase = Terminated
				step.Action = ActionTerminate
				continue
			}
			s.selectVertex(&step)
		case SelectingVertex:
			s.beginEdges(&step)
		case VisitingEdges:
			s.relaxNext(&step)
		default:
			// Unknown phase: treat as finished rather than spin.
			s.phase = Terminated
			step.Action = ActionTerminate
		}
	}

	// Trailing zero-work transition.
	if s.phase == Idle && len(s.open) == 0 {
		s.phase = Terminated
	}
	step.To = s.phase

	if step.Action != ActionNone {
		s.steps++
		if s.options.Observer != nil {
			s.options.Observer(step)
		}
	}

	return step
}

// selectVertex makes the unvisited vertex with the smallest distance current.
// Ties resolve to the lowest VertexID.
func (s *Solver) selectVertex(step *Step) {
	var (
		best     core.VertexID
		bestDist int64
		found    bool
	)
	for id := range s.open {
		d := s.table[id].Distance
		if !found || d < bestDist || (d == bestDist && id < best) {
			best, bestDist, found = id, d, true
		}
	}

	s.current = best
	s.cursor = 0
	s.phase = SelectingVertex

	step.Action = ActionSelect
	step.Vertex = best
}

// beginEdges positions the cursor on the first edge, or settles an edge-less vertex.
func (s *Solver) beginEdges(step *Step) {
	step.Vertex = s.current
	edges := s.adj[s.current]
	if len(edges) == 0 {
		s.settle(step)
		step.Action = ActionSettle

		return
	}

	s.cursor = 0
	s.phase = VisitingEdges

	step.Action = ActionBeginEdges
	step.Edge = edges[0]
	step.HasEdge = true
}

// relaxNext examines adj[current][cursor], applies the relaxation rule and
// moves the cursor; settles current after its last edge.
func (s *Solver) relaxNext(step *Step) {
	edges := s.adj[s.current]
	e := edges[s.cursor]

	step.Action = ActionRelax
	step.Vertex = s.current
	step.Edge = e
	step.HasEdge = true

	if _, unvisited := s.open[e.To]; !unvisited {
		// Settled targets are final; never revisit them.
		step.SkippedSettled = true
	} else {
		cand := saturatingAdd(s.table[s.current].Distance, e.Weight)
		if cand < s.table[e.To].Distance {
			s.table[e.To] = Entry{Distance: cand, Predecessor: s.current, HasPredecessor: true}
			step.Improved = true
		}
	}

	s.cursor++
	if s.cursor >= len(edges) {
		s.settle(step)
	}
}

// settle removes current from the unvisited set and returns to Idle.
func (s *Solver) settle(step *Step) {
	delete(s.open, s.current)
	s.cursor = 0
	s.phase = Idle
	step.Settled = true
}
