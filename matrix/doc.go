// Package matrix provides the all-pairs shortest-path engine of lvpath: a
// dense int64 distance matrix and the Floyd–Warshall closure over it.
//
// The matrix package provides:
//
//   - Dense: a row-major PairwiseDistanceMatrix with bounds-checked At/Set.
//   - FromGraph / FromRows: build the initial matrix (diagonal 0, Inf where
//     no edge exists) from a core.Graph or from a literal table.
//   - FloydWarshall: in-place relaxation over intermediate vertices, k outermost.
//   - AllPairs: Floyd–Warshall plus a next-hop table so any route can be rebuilt.
//
// All entries must be non-negative. Floyd–Warshall itself tolerates negative
// edges without negative cycles, but this engine shares the Dijkstra
// contract and rejects them with ErrInvalidWeight.
//
// Inf is core.Infinity, so a row of the result compares directly with a
// Dijkstra DistanceTable from the same source.
//
// Matrices cost O(V²) memory and O(V³) time; they are best for small or dense graphs.
package matrix
