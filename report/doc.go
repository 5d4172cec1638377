// Package report renders engine results as plain text.
//
// It is the boundary between the engines and a human reader: dijkstra and
// matrix never print, and report never computes. Every function writes to
// an io.Writer and returns the first write error.
//
//	ShortestPaths  "Shortest paths from A:" then "To B: 10" or "To F: Unreachable"
//	Reachable      "Reachable Nodes from A:" then "A (Distance: 0)"
//	Routes         "A -> B -> D -> E<TAB>Total cost: 27"
//	Matrix         "All-Pairs Shortest Paths:" then one row per vertex, INF for no path
//
// WithThousands groups digits with go-humanize, so 1234567 prints as 1,234,567.
package report
