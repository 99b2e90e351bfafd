// Package session drives a dijkstra.Solver for a viewer.
//
// A Session owns one solver and one renderer. Run paces the solver with a
// ticker, printing a frame per step; RunManual reads line commands instead.
// When the solver terminates the final frame carries the shortest path to
// the configured destination. With Loop set, Run resets the solver and starts
// over until its context is cancelled.
//
// Solver query errors (unknown or unreachable destination) end the run; the
// caller may Reset and try again.
package session
