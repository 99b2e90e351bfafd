// Package dijkstra defines the phase and action enums, the distance table
// entry, the Step record, the sentinel errors and the functional options of
// the step-wise solver.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathstep/core"
)

// Infinity is the distance of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is core.ErrVertexNotFound, re-exported so callers can
	// branch on it without importing core.
	ErrVertexNotFound = core.ErrVertexNotFound

	// ErrInvalidQuery indicates a path query that cannot be answered.
	ErrInvalidQuery = errors.New("dijkstra: invalid query")

	// ErrNotTerminated indicates a path query issued before the run finished.
	ErrNotTerminated = fmt.Errorf("%w: solver has not terminated", ErrInvalidQuery)

	// ErrUnreachable indicates a path query for a vertex with Infinity distance.
	ErrUnreachable = fmt.Errorf("%w: destination is unreachable", ErrInvalidQuery)
)

// Phase is the solver's position in its state machine.
type Phase uint8

const (
	// Idle: no vertex selected. Entry point after reset and after a vertex is settled.
	Idle Phase = iota

	// SelectingVertex: a vertex has just been chosen; no edge is under inspection yet.
	SelectingVertex

	// VisitingEdges: the current vertex's edges are being relaxed one per step.
	VisitingEdges

	// Terminated: every vertex is settled; Advance is a no-op.
	Terminated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case SelectingVertex:
		return "SelectingVertex"
	case VisitingEdges:
		return "VisitingEdges"
	case Terminated:
		return "Terminated"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Action names the unit of work performed by one Advance call.
type Action uint8

const (
	// ActionNone: nothing happened (the solver was already terminated).
	ActionNone Action = iota

	// ActionSelect: the minimum-distance unvisited vertex became current.
	ActionSelect

	// ActionBeginEdges: the edge cursor was placed on the current vertex's first edge.
	ActionBeginEdges

	// ActionRelax: the edge under the cursor was examined and the cursor moved on.
	ActionRelax

	// ActionSettle: an edge-less current vertex was settled.
	ActionSettle

	// ActionTerminate: an Idle solver with nothing left to visit terminated.
	ActionTerminate
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSelect:
		return "select"
	case ActionBeginEdges:
		return "begin-edges"
	case ActionRelax:
		return "relax"
	case ActionSettle:
		return "settle"
	case ActionTerminate:
		return "terminate"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Entry is one row of the distance table.
type Entry struct {
	Distance       int64         // Infinity until reached
	Predecessor    core.VertexID // valid only if HasPredecessor
	HasPredecessor bool          // false for the source and unreached vertices
}

// Reachable reports whether a finite distance has been assigned.
func (e Entry) Reachable() bool { return e.Distance != Infinity }

// Step describes what a single Advance call did.
type Step struct {
	Action Action // unit of work performed
	From   Phase  // phase before the call
	To     Phase  // phase after the call

	Vertex  core.VertexID // vertex the action concerned (current vertex)
	Edge    core.Edge     // edge examined (Relax) or placed under the cursor (BeginEdges)
	HasEdge bool          // Edge is meaningful

	Improved       bool // Relax lowered the target's distance
	SkippedSettled bool // Relax found the target already settled
	Settled        bool // Vertex left the unvisited set during this call
}

// Options configures a Solver.
type Options struct {
	// Observer, if set, is called after every Advance that did work.
	Observer func(Step)
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithObserver registers a hook that receives every non-noop Step.
// A nil function is ignored.
func WithObserver(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// DefaultOptions returns Options with no observer.
func DefaultOptions() Options {
	return Options{}
}

// saturatingAdd returns a+b, clamped to Infinity. b must be non-negative.
func saturatingAdd(a, b int64) int64 {
	if a == Infinity || b > Infinity-a {
		return Infinity
	}

	return a + b
}
