// File: methods_adjacent.go
// Role: the read contract the engines depend on.
//
// Determinism:
//   - Arcs are returned in insertion order.
package core

import "fmt"

// Neighbors returns the outgoing arcs of v.
//
// This is the sole read contract the engines require. The returned slice is
// a copy; callers may keep or modify it without affecting g.
//
// Errors:
//   - ErrUnknownVertex: v is not a vertex of g.
//
// Complexity:
//   - Time O(deg(v)), Space O(deg(v)).
func (g *Graph) Neighbors(v VertexID) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(v) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownVertex, v)
	}
	out := make([]Arc, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Adjacency returns a deep copy of the full adjacency list, indexed by
// VertexID. Engines that walk every vertex take one snapshot instead of
// calling Neighbors V times.
//
// Complexity: O(V + E).
func (g *Graph) Adjacency() [][]Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Arc, len(g.adj))
	for v, arcs := range g.adj {
		out[v] = make([]Arc, len(arcs))
		copy(out[v], arcs)
	}

	return out
}
