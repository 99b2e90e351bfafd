// Package bfs provides breadth-first search over a core.Graph along outgoing
// edges, ignoring weights.
//
// The visualizer uses it as a reachability pre-check: before a run starts the
// driver can tell whether the configured destination will ever get a finite
// distance, and tests use it to cross-check which vertices end at Infinity.
//
// Features:
//
//   - Visit order, hop depth and BFS-tree parents in a single Result.
//   - Deterministic: neighbours are explored in stored edge order.
//   - Optional hooks (OnVisit), depth limiting (WithMaxDepth), neighbour
//     filtering (WithFilterNeighbor) and context cancellation (WithContext).
//
// Complexity: O(V + E) time, O(V) space.
package bfs
