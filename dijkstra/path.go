package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Reconstruct walks predecessor links backward from dst to source and
// returns the vertices in source→dst order.
//
// A destination still at core.Infinity returns ErrUnreachable: its
// predecessor entry is only the initial "points home" value. The walk is
// bounded by len(prev) steps, so a corrupt or zero-weight-cycle table
// returns ErrPredecessorCycle instead of looping.
//
// Complexity: O(path length).
func Reconstruct(dist []int64, prev []core.VertexID, source, dst core.VertexID) ([]core.VertexID, error) {
	n := len(prev)
	if len(dist) != n {
		return nil, fmt.Errorf("dijkstra: table size mismatch: dist=%d prev=%d", len(dist), n)
	}
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: source id %d", core.ErrUnknownVertex, source)
	}
	if dst < 0 || int(dst) >= n {
		return nil, fmt.Errorf("%w: destination id %d", core.ErrUnknownVertex, dst)
	}
	if dist[dst] == core.Infinity {
		return nil, fmt.Errorf("%w: id %d", ErrUnreachable, dst)
	}

	path := []core.VertexID{dst}
	for cur, steps := dst, 0; cur != source; steps++ {
		if steps >= n {
			return nil, fmt.Errorf("%w: from id %d", ErrPredecessorCycle, dst)
		}
		cur = prev[cur]
		if cur < 0 || int(cur) >= n {
			return nil, fmt.Errorf("%w: predecessor id %d", core.ErrUnknownVertex, cur)
		}
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathTo reconstructs the shortest path from r.Source to dst.
func (r *Result) PathTo(dst core.VertexID) ([]core.VertexID, error) {
	return Reconstruct(r.Dist, r.Prev, r.Source, dst)
}

// Distance returns the shortest distance to v, core.Infinity if unreached.
func (r *Result) Distance(v core.VertexID) (int64, error) {
	if v < 0 || int(v) >= len(r.Dist) {
		return core.Infinity, fmt.Errorf("%w: id %d", core.ErrUnknownVertex, v)
	}

	return r.Dist[v], nil
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v core.VertexID) bool {
	return v >= 0 && int(v) < len(r.Dist) && r.Dist[v] != core.Infinity
}

// ReachableVertices lists every reached vertex, the source included, in ID order.
func (r *Result) ReachableVertices() []core.VertexID {
	out := make([]core.VertexID, 0, len(r.Dist))
	for v, d := range r.Dist {
		if d != core.Infinity {
			out = append(out, core.VertexID(v))
		}
	}

	return out
}

// PathCost sums the cheapest arc along each hop of path in g.
// A single-vertex path costs 0.
//
// Errors:
//   - ErrBrokenPath: empty path, or a hop with no arc.
//   - ErrDistanceOverflow: the sum would reach core.Infinity.
//   - core.ErrUnknownVertex (wrapped): a vertex is not in g.
func PathCost(g *core.Graph, path []core.VertexID) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrBrokenPath)
	}
	if !g.HasVertex(path[0]) {
		return 0, fmt.Errorf("%w: id %d", core.ErrUnknownVertex, path[0])
	}

	var total int64
	for i := 1; i < len(path); i++ {
		arcs, err := g.Neighbors(path[i-1])
		if err != nil {
			return 0, err
		}
		best := core.Infinity
		for _, a := range arcs {
			if a.To == path[i] && a.Weight < best {
				best = a.Weight
			}
		}
		if best == core.Infinity {
			return 0, fmt.Errorf("%w: %d→%d", ErrBrokenPath, path[i-1], path[i])
		}
		if best >= core.Infinity-total {
			return 0, ErrDistanceOverflow
		}
		total += best
	}

	return total, nil
}
