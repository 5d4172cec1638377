// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade exposing configuration getters, Freeze and Stats.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity.

package core

// Directed reports whether edges are one-way.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Freeze ends the build phase. Every later AddVertex, AddEdge or
// AddEdgeByName returns ErrFrozen. Freezing twice is a no-op.
//
// Engines do not require a frozen graph, but callers that share a graph
// between queries should freeze it so it cannot change under them.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// GraphStats is a read-only snapshot of sizes and flags.
type GraphStats struct {
	Directed      bool
	Frozen        bool
	VertexCount   int
	NamedVertices int
	EdgeCount     int
	ArcCount      int
}

// Stats returns a consistent snapshot of g.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := 0
	for _, a := range g.adj {
		arcs += len(a)
	}

	return GraphStats{
		Directed:      g.directed,
		Frozen:        g.frozen,
		VertexCount:   len(g.adj),
		NamedVertices: g.names.Named(),
		EdgeCount:     len(g.edges),
		ArcCount:      arcs,
	}
}
