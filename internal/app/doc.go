// Package app wires the lvpath command together: it loads a graph
// description, applies command-line overrides, runs the requested shortest
// path query and writes the report.
package app
