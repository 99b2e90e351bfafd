// Package dijkstra provides an incremental, observable implementation of
// Dijkstra's single-source shortest-path algorithm on graphs with
// non-negative edge weights.
//
// Overview:
//
//   - A Solver computes shortest distances from a source vertex to all other
//     vertices one micro-step at a time. Every call to Advance performs at
//     most one unit of work (select a vertex, position the edge cursor,
//     relax one edge, settle an edge-less vertex) and returns a Step record.
//   - Between calls, the full algorithm state can be read through Snapshot:
//     phase, current vertex, edge under inspection, distance table and the
//     unvisited set. This is what a renderer, a test harness or a UI driver
//     consumes to display progress instead of only the final result.
//   - Progress is cooperative: there is no goroutine, timer or callback
//     scheduling inside the package. The driver stops calling Advance to stop.
//
// State machine:
//
//	Idle ──Select──▶ SelectingVertex ──BeginEdges──▶ VisitingEdges ──Relax*──┐
//	 ▲                    │                                                   │
//	 │                    └──Settle (no neighbours)──┐                        │
//	 └───────────────────────────────────────────────┴──── last edge relaxed ─┘
//	Idle with an empty unvisited set ──▶ Terminated (folded into the same call)
//
//   - Vertex selection picks the unvisited vertex with the smallest tentative
//     distance; ties are broken by the lowest VertexID.
//   - Relaxation only touches unvisited targets; edges into settled vertices
//     are skipped, which is what makes the greedy strategy correct.
//   - Unreachable vertices are selected too (with distance Infinity) and
//     settled without changing anything, so a run always ends with an empty
//     unvisited set. A full run takes exactly 2·V + E calls.
//
// Distances:
//
//   - Infinity (math.MaxInt64) marks an unreachable vertex. Additions
//     saturate at Infinity, so large legitimate weights cannot wrap around.
//
// Performance and complexity:
//
//   - Advance: O(1) except Select, which scans the unvisited set: O(|unvisited|).
//   - Full run: O(V² + E) time, O(V) space for the table and unvisited set.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph passed to New / ResetGraph.
//   - ErrVertexNotFound: unknown source or destination, or an edge targeting
//     a missing vertex (same value as core.ErrVertexNotFound).
//   - ErrInvalidQuery:   ShortestPathTo before termination (ErrNotTerminated)
//     or for an unreachable destination (ErrUnreachable).
//
// Thread safety:
//
//   - A Solver is owned by a single driver and must not be shared between
//     goroutines without external synchronization. Snapshots are independent
//     copies and may be handed to other goroutines freely.
package dijkstra
