// Package config describes one visualizer run: which graph to build, where
// the search starts and ends, and how the run is paced and printed.
//
// Values are layered: Default, then an optional YAML file (Load), then any
// command-line flag the user actually set (BindFlags + Merge).
package config
