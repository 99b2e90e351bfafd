// File: query.go
// Role: Read-only observation surface of the Solver and path reconstruction.
// Policy:
//   - Nothing returned here aliases solver internals; maps and slices are copies.

package dijkstra

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathstep/core"
)

// Snapshot is a read-only copy of the solver state at one point in time.
type Snapshot struct {
	Phase  Phase         // state machine position
	Source core.VertexID // origin of the run
	Steps  int           // non-noop Advance calls since reset

	Current    core.VertexID // vertex being expanded
	HasCurrent bool          // true in SelectingVertex and VisitingEdges
	Edge       core.Edge     // edge under inspection (next to relax)
	HasEdge    bool          // true only in VisitingEdges

	Table     map[core.VertexID]Entry // full distance table
	Unvisited []core.VertexID         // ascending
}

// IsUnvisited reports whether id is still in the unvisited set.
func (s Snapshot) IsUnvisited(id core.VertexID) bool {
	i := sort.Search(len(s.Unvisited), func(i int) bool { return s.Unvisited[i] >= id })

	return i < len(s.Unvisited) && s.Unvisited[i] == id
}

// IsSettled reports whether id belongs to the graph and has been settled.
func (s Snapshot) IsSettled(id core.VertexID) bool {
	_, known := s.Table[id]

	return known && !s.IsUnvisited(id)
}

// Snapshot returns an independent copy of the observable state.
// Complexity: O(V log V).
func (s *Solver) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.phase,
		Source:    s.src,
		Steps:     s.steps,
		Table:     make(map[core.VertexID]Entry, len(s.table)),
		Unvisited: make([]core.VertexID, 0, len(s.open)),
	}
	for id, e := range s.table {
		snap.Table[id] = e
	}
	for _, id := range s.order {
		if _, ok := s.open[id]; ok {
			snap.Unvisited = append(snap.Unvisited, id)
		}
	}

	switch s.phase {
	case SelectingVertex:
		snap.Current, snap.HasCurrent = s.current, true
	case VisitingEdges:
		snap.Current, snap.HasCurrent = s.current, true
		snap.Edge, snap.HasEdge = s.adj[s.current][s.cursor], true
	}

	return snap
}

// IsDone reports whether the run has terminated.
func (s *Solver) IsDone() bool { return s.phase == Terminated }

// Phase returns the current phase.
func (s *Solver) Phase() Phase { return s.phase }

// Source returns the vertex distances are measured from.
func (s *Solver) Source() core.VertexID { return s.src }

// Steps returns the number of non-noop Advance calls since the last reset.
func (s *Solver) Steps() int { return s.steps }

// Graph returns the solver's private graph. Graphs are immutable, so the
// pointer is safe to share with renderers.
func (s *Solver) Graph() *core.Graph { return s.graph }

// Entry returns the distance table row of id.
func (s *Solver) Entry(id core.VertexID) (Entry, error) {
	e, ok := s.table[id]
	if !ok {
		return Entry{}, fmt.Errorf("dijkstra: entry %d: %w", id, ErrVertexNotFound)
	}

	return e, nil
}

// Distances returns vertex → current distance (Infinity when unreached).
func (s *Solver) Distances() map[core.VertexID]int64 {
	out := make(map[core.VertexID]int64, len(s.table))
	for id, e := range s.table {
		out[id] = e.Distance
	}

	return out
}

// Run advances until the solver terminates and returns how many calls did work.
// On an already terminated solver it returns 0.
func (s *Solver) Run() int {
	n := 0
	for !s.IsDone() {
		if s.Advance().Action != ActionNone {
			n++
		}
	}

	return n
}

// ShortestPathTo returns the vertices of a shortest path from the source to
// dest, excluding the source and ending at dest. For dest == source the path
// is empty.
//
// Preconditions:
//  1. dest exists (ErrVertexNotFound).
//  2. The solver is Terminated (ErrNotTerminated, wraps ErrInvalidQuery).
//  3. dest is reachable (ErrUnreachable, wraps ErrInvalidQuery).
//
// The predecessor walk is bounded by the vertex count, so a broken chain is
// reported as ErrInvalidQuery instead of looping.
//
// Complexity: O(path length).
func (s *Solver) ShortestPathTo(dest core.VertexID) ([]core.VertexID, error) {
	entry, ok := s.table[dest]
	if !ok {
		return nil, fmt.Errorf("dijkstra: destination %d: %w", dest, ErrVertexNotFound)
	}
	if s.phase != Terminated {
		return nil, ErrNotTerminated
	}
	if !entry.Reachable() {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}

	path := make([]core.VertexID, 0, 8)
	for cur := dest; cur != s.src; {
		if len(path) >= len(s.table) {
			return nil, fmt.Errorf("%w: predecessor cycle through %d", ErrInvalidQuery, cur)
		}
		path = append(path, cur)
		e := s.table[cur]
		if !e.HasPredecessor {
			return nil, fmt.Errorf("%w: no predecessor for %d", ErrInvalidQuery, cur)
		}
		cur = e.Predecessor
	}

	// Reverse in place: source-side first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
