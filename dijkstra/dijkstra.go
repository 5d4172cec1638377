// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with O(E) worst-case heap entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - We take one adjacency snapshot and scan it for negative weights before
//     any relaxation happens.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - Relaxations that would exceed MaxDistance are never pushed, so the heap
//     only ever holds entries within the cap.
//   - A sum that would reach Infinity cannot beat any finite distance and is
//     skipped. It is an error only if its target is left with no representable
//     distance at the end of the run.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Dijkstra computes shortest distances and predecessors from source to
// every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrUnknownSource).
//  3. No arc in g can have a negative weight (ErrInvalidWeight).
//
// The graph is read once through core.Graph.Adjacency and never mutated.
// Each call allocates fresh tables, so repeated calls are independent and
// return identical results for an unchanged graph.
func Dijkstra(g *core.Graph, source core.VertexID, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}

	adj := g.Adjacency()
	if source < 0 || int(source) >= len(adj) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownSource, source)
	}

	for u, arcs := range adj {
		for _, a := range arcs {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: arc %d→%d weight=%d", ErrInvalidWeight, u, a.To, a.Weight)
			}
		}
	}

	r := newRunner(adj, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("dijkstra: run complete",
			"source", int(source),
			"vertices", len(adj),
			"pops", r.stats.Pops,
			"stale", r.stats.Stale,
			"relaxations", r.stats.Relaxations,
		)
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev, Stats: r.stats}, nil
}

// DijkstraByName resolves name through the graph's registry and runs Dijkstra.
func DijkstraByName(g *core.Graph, name string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	source, err := g.VertexID(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownSource, err)
	}

	return Dijkstra(g, source, opts...)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     [][]core.Arc    // adjacency snapshot; read-only
	options Options         // thresholds
	dist    []int64         // vertex → current best distance from source
	prev    []core.VertexID // vertex → vertex that last improved dist
	done    []bool          // vertex → distance finalized
	pq      nodePQ          // lazy min-heap
	stats   Stats

	// overflow records, per target, the first relaxation whose sum could
	// not be represented.
	overflow map[core.VertexID][2]int64
}

// newRunner sets dist to Infinity and prev to source everywhere, then seeds
// the heap with (0, source).
func newRunner(adj [][]core.Arc, source core.VertexID, cfg Options) *runner {
	n := len(adj)
	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]core.VertexID, n),
		done:    make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Infinity
		r.prev[v] = source
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r
}

// process is the core loop. It repeatedly extracts the minimum entry and
// relaxes the arcs of newly finalized vertices until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		r.stats.Pops++

		// Stale-entry check. The heap has no decrease-key, so an improved
		// vertex is pushed again and its older, larger entries stay behind.
		// Skipping them here is what keeps each vertex finalized exactly once
		// with its optimal distance; it is not an optimization.
		if r.done[item.id] || item.dist > r.dist[item.id] {
			r.stats.Stale++
			continue
		}

		r.done[item.id] = true
		r.relax(item.id)
	}

	return r.checkOverflow()
}

// relax tries to improve every neighbor of the finalized vertex u.
// Strict "<" keeps the first predecessor found among equal-cost paths.
func (r *runner) relax(u core.VertexID) {
	du := r.dist[u]
	for _, a := range r.adj[u] {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if r.done[a.To] {
			continue
		}

		// du is finite here. A sum reaching the sentinel never improves a
		// finite distance; remember it in case the target stays unreached.
		if a.Weight >= core.Infinity-du {
			r.noteOverflow(a.To, du, a.Weight)
			continue
		}
		nd := du + a.Weight

		if nd > r.options.MaxDistance {
			continue
		}
		if nd >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = nd
		r.prev[a.To] = u
		r.stats.Relaxations++
		heap.Push(&r.pq, nodeItem{id: a.To, dist: nd})
	}
}

// noteOverflow keeps the first unrepresentable sum seen for v. Under a
// finite MaxDistance the sum is simply beyond the cap and is not recorded.
func (r *runner) noteOverflow(v core.VertexID, du, w int64) {
	if r.options.MaxDistance < core.Infinity {
		return
	}
	if r.overflow == nil {
		r.overflow = make(map[core.VertexID][2]int64)
	}
	if _, seen := r.overflow[v]; !seen {
		r.overflow[v] = [2]int64{du, w}
	}
}

// checkOverflow fails the run if a vertex is reachable only through paths
// whose length cannot be represented. The lowest such id is reported.
func (r *runner) checkOverflow() error {
	bad := core.VertexID(-1)
	for v := range r.overflow {
		if r.dist[v] == core.Infinity && (bad < 0 || v < bad) {
			bad = v
		}
	}
	if bad < 0 {
		return nil
	}
	sum := r.overflow[bad]

	return fmt.Errorf("%w: vertex %d: %d + %d", ErrDistanceOverflow, bad, sum[0], sum[1])
}

// nodeItem is one heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   core.VertexID
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
