// Package dijkstra provides the single-source shortest-path engine of lvpath:
// Dijkstra's algorithm over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - One run produces both the DistanceTable and the PredecessorTable, so
//     distances-only callers and path callers share the same engine.
//
// Precondition:
//
//   - Every edge weight must be ≥ 0. Dijkstra is unsound on negative weights;
//     core.Graph rejects them at insertion and Dijkstra scans again before
//     any relaxation, returning ErrInvalidWeight.
//
// Lazy deletion:
//
//   - container/heap has no decrease-key. When a vertex improves we push a new
//     entry and leave the old one in place. A popped entry whose vertex is already
//     finalized, or whose distance is larger than the table's current best, is
//     stale and must be skipped; processing it would relax arcs from a
//     non-optimal distance.
//
// Sentinel:
//
//   - Unreached vertices keep core.Infinity. Additions are checked against the
//     sentinel, so a finite distance never wraps or collides with it. A sum
//     that would reach it is skipped, since it cannot improve anything; the run
//     fails with ErrDistanceOverflow only when such a sum was the sole way to
//     reach a vertex.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source core.VertexID, opts ...Option) (*Result, error)
//	func DijkstraByName(g *core.Graph, name string, opts ...Option) (*Result, error)
//	func Reconstruct(dist []int64, prev []core.VertexID, source, dst core.VertexID) ([]core.VertexID, error)
//	func PathCost(g *core.Graph, path []core.VertexID) (int64, error)
//
//	  - opts:
//	      • WithMaxDistance(int64):      explore only vertices with distance ≤ given value.
//	      • WithInfEdgeThreshold(int64): skip any edge whose weight ≥ threshold.
//	      • WithLogger(*slog.Logger):    debug summary (pops, stale pops, relaxations).
//
// Thread safety:
//
//   - Dijkstra snapshots the adjacency once and keeps all state local to the
//     call; it never mutates the graph. Freeze the graph if it is shared.
package dijkstra
