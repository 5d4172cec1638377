// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - IDs are allocated densely in insertion order: the n-th new vertex gets ID n-1.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"strconv"
)

// AddVertex registers a vertex and returns its ID.
//
// Implementation:
//   - Stage 1: Reject mutation on a frozen graph (ErrFrozen).
//   - Stage 2: Register name; an existing name returns its current ID.
//   - Stage 3: Grow adjacency storage for a newly allocated ID.
//
// Behavior highlights:
//   - Idempotent for non-empty names.
//   - An empty name allocates a fresh unnamed vertex on every call.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(name string) (VertexID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return NoVertex, ErrFrozen
	}

	return g.addVertexLocked(name), nil
}

// addVertexLocked registers name and keeps adj in step with the registry.
// Caller holds mu for writing.
func (g *Graph) addVertexLocked(name string) VertexID {
	id, created := g.names.Register(name)
	if created {
		g.adj = append(g.adj, nil)
	}

	return id
}

// HasVertex reports whether id is a valid vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(id)
}

func (g *Graph) hasVertexLocked(id VertexID) bool {
	return id >= 0 && int(id) < len(g.adj)
}

// VertexID resolves a display name to its ID.
//
// Errors:
//   - ErrUnknownVertex: name was never registered (or is empty).
func (g *Graph) VertexID(name string) (VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.names.Lookup(name)
	if !ok {
		return NoVertex, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}

	return id, nil
}

// Name returns the display name of id, or "" if it has none.
func (g *Graph) Name(id VertexID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.names.Name(id)
}

// Label returns the display name of id, falling back to "#<id>" for unnamed
// vertices. Reporting code uses it so every vertex prints as something.
func (g *Graph) Label(id VertexID) string {
	if name := g.Name(id); name != "" {
		return name
	}

	return "#" + strconv.Itoa(int(id))
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}
