// Package render turns solver snapshots into text frames.
//
// A frame has a one-line state header, the unvisited set, the vertex and edge
// under inspection, and a distance table with one row per vertex:
//
//	vertex | distance | predecessor | mark
//
// Unreached distances print as ∞ and a missing predecessor as "-". The mark
// column names the role of the row: current, target (head of the edge under
// inspection), path, or settled.
//
// When the destination writer is a terminal, the current vertex is painted
// red, the edge target green and path vertices magenta. Colour detection can
// be overridden with WithColor.
package render
