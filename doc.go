// Package pathstep lets you watch Dijkstra's shortest-path search instead of
// only reading its answer.
//
// 🚀 What is pathstep?
//
//	A step-wise single-source shortest-path solver plus a terminal viewer:
//		• Graph model: immutable directed weighted graphs with a builder
//		• Solver: one micro-step per Advance (select, begin edges, relax, settle)
//		• Snapshots: read-only copies of phase, cursor, distances and predecessors
//		• Generators: the five-vertex demo, random complete and sparse digraphs
//		• Viewer: timer-paced or manual stepping, text frames, YAML + flag config
//
// ✨ Why step?
//
//   - Every state change is observable: current vertex, edge under
//     inspection, tentative distances.
//   - Deterministic: ties go to the lowest vertex ID, random graphs are seeded.
//   - Guarded queries: paths are only handed out for finished, reachable runs.
//
// Packages:
//
//	core/     — VertexID, Edge, Vertex, Graph and Builder
//	dijkstra/ — the step-wise Solver, Snapshot and Step records
//	builder/  — graph constructors (Scenario, Complete, RandomSparse, Edges)
//	bfs/      — breadth-first reachability
//	render/   — snapshot → text frame (go-pretty tables)
//	config/   — run configuration (YAML, flags)
//	session/  — timed and manual drivers
//	cmd/pathstep — the CLI
//
// Quick start:
//
//	go run ./cmd/pathstep --graph scenario --destination 3
//
// prints 19 frames and ends with
//
//	path: 1 → 5 → 4 → 2 → 3
package pathstep
