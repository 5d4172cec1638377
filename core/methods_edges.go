// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/AddEdgeByName/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Arcs are appended to adjacency in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.
package core

import "fmt"

// ValidateWeight reports ErrInvalidWeight for w < 0 or w == Infinity.
// Zero is a legal weight.
func ValidateWeight(w int64) error {
	if w < 0 || w == Infinity {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, w)
	}

	return nil
}

// AddEdge inserts an edge a→b of weight w (and b→a when undirected).
//
// Steps:
//  1. Reject mutation on a frozen graph (ErrFrozen).
//  2. Validate weight (ErrInvalidWeight) before touching any state.
//  3. Validate both endpoints exist (ErrUnknownVertex).
//  4. Reject a→a unless WithLoops (ErrLoopNotAllowed).
//  5. Append arc a→b; mirror b→a if undirected and a != b.
//
// Parallel edges are kept; engines simply relax each arc.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b VertexID, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if err := ValidateWeight(w); err != nil {
		return err
	}
	if !g.hasVertexLocked(a) {
		return fmt.Errorf("%w: id %d", ErrUnknownVertex, a)
	}
	if !g.hasVertexLocked(b) {
		return fmt.Errorf("%w: id %d", ErrUnknownVertex, b)
	}
	if a == b && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	g.addEdgeLocked(a, b, w)

	return nil
}

// AddEdgeByName registers any missing endpoint names and then inserts the
// edge. The weight is validated first, so a rejected call leaves the graph
// unchanged.
func (g *Graph) AddEdgeByName(a, b string, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if err := ValidateWeight(w); err != nil {
		return fmt.Errorf("edge %q-%q: %w", a, b, err)
	}
	if a == b && a != "" && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	from := g.addVertexLocked(a)
	to := g.addVertexLocked(b)
	g.addEdgeLocked(from, to, w)

	return nil
}

// addEdgeLocked appends arcs. Caller holds mu for writing and has validated
// the weight, the endpoints and the loop policy.
func (g *Graph) addEdgeLocked(a, b VertexID, w int64) {
	g.edges = append(g.edges, Edge{From: a, To: b, Weight: w, Directed: g.directed})
	g.adj[a] = append(g.adj[a], Arc{To: b, Weight: w})
	if !g.directed && a != b {
		g.adj[b] = append(g.adj[b], Arc{To: a, Weight: w})
	}
}

// Edges returns a copy of the inserted edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of AddEdge calls that succeeded.
// An undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
