// Package core defines the central Graph, Arc and Edge types used by the
// shortest-path engines, together with the name registry that maps optional
// display names onto dense vertex identifiers.
//
// This file declares VertexID, Arc, Edge, Graph, GraphOption, the Infinity
// sentinel, the sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidWeight   - negative weight, or a weight equal to the Infinity sentinel.
//	ErrUnknownVertex   - vertex ID or name is not registered in the graph.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrFrozen          - mutation attempted after Freeze.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidWeight indicates that an edge weight is negative or collides
	// with the Infinity sentinel. Both engines require weights in [0, Infinity).
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrUnknownVertex indicates an operation referenced a vertex ID or name
	// that is not present in the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation was attempted on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Infinity is the "no known finite path" sentinel shared by every distance
// table in this module. It is never the result of an addition: engines test
// for it before adding, and guard every finite sum against overflow.
const Infinity int64 = math.MaxInt64

// VertexID is a dense vertex index in [0, VertexCount()).
type VertexID int

// NoVertex is returned alongside errors where a VertexID is expected.
const NoVertex VertexID = -1

// Arc is one outgoing adjacency entry: the neighbor reached and the cost of
// getting there. An undirected edge contributes one Arc to each endpoint.
type Arc struct {
	// To is the neighbor reached by this arc.
	To VertexID

	// Weight is the non-negative traversal cost.
	Weight int64
}

// Edge records one AddEdge call as it was submitted.
type Edge struct {
	From     VertexID
	To       VertexID
	Weight   int64
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
// Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes vertex storage for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is an adjacency-list graph over dense vertex IDs.
//
// A Graph is built incrementally with AddVertex/AddEdge and then queried.
// Engines only read it through Neighbors and VertexCount. mu guards all
// fields so that accidental concurrent misuse is not a data race; Freeze
// turns the build phase off explicitly.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // one-way edges when true
	allowLoops bool // allow self-loops
	capacity   int  // initial vertex capacity hint

	// Storage
	frozen bool     // reject mutation once set
	names  Registry // name <-> id bijection
	adj    [][]Arc  // adj[v] = outgoing arcs of v
	edges  []Edge   // insertion-ordered edge log
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with self-loops disabled.
// Complexity: O(capacity)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.names = newRegistry(g.capacity)
	g.adj = make([][]Arc, 0, g.capacity)

	return g
}
