// Package core provides the in-memory Graph model consumed by the
// shortest-path engines in this module.
//
// Vertices are dense integer IDs 0..VertexCount()-1, each with an optional
// display name. Names and IDs are kept in a single Registry so the
// name <-> id mapping is a bijection by construction.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    One-way edges. Undirected graphs (the default) store every edge as
//	    two arcs of equal weight.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithCapacity(n int)
//	    Pre-sizes vertex storage.
//
// Core Methods:
//
//	// Build
//	AddVertex(name string) (VertexID, error)        // O(1), idempotent per name
//	AddEdge(a, b VertexID, w int64) error           // O(1), w ≥ 0
//	AddEdgeByName(a, b string, w int64) error       // O(1), registers names
//	Freeze()                                        // O(1), ends the build phase
//
//	// Query
//	Neighbors(v VertexID) ([]Arc, error)            // O(deg v)
//	Adjacency() [][]Arc                             // O(V+E) snapshot
//	VertexID(name string) (VertexID, error)         // O(1)
//	Name(id VertexID) string / Label(id) string     // O(1)
//	VertexCount(), EdgeCount(), Edges(), Stats()
//
// Weights:
//
//	Every weight must lie in [0, Infinity). Negative weights make Dijkstra
//	unsound and are rejected at insertion with ErrInvalidWeight; Infinity
//	itself is reserved as the "unreached" sentinel.
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. The engines assume exclusive,
//	sequential ownership and never mutate the graph; Freeze makes that
//	contract explicit.
package core
