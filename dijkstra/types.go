// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Logger:           optional *slog.Logger receiving a debug summary per run.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrUnknownSource     if the source vertex does not exist (wraps core.ErrUnknownVertex).
//	– ErrInvalidWeight     if a negative edge weight is detected (wraps core.ErrInvalidWeight).
//	– ErrDistanceOverflow  if a vertex is reachable only by paths whose length reaches Infinity.
//	– ErrUnreachable       if a path is requested to a vertex still at Infinity.
//	– ErrPredecessorCycle  if a predecessor walk does not reach the source.
//	– ErrBrokenPath        if PathCost finds a hop with no connecting arc.
//	– ErrBadMaxDistance    if MaxDistance < 0 (panics from the option).
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0 (panics from the option).
package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownSource indicates that the source vertex does not exist in the graph.
	ErrUnknownSource = fmt.Errorf("dijkstra: source vertex not found: %w", core.ErrUnknownVertex)

	// ErrInvalidWeight indicates that a negative edge weight was detected in the graph.
	ErrInvalidWeight = fmt.Errorf("dijkstra: %w", core.ErrInvalidWeight)

	// ErrDistanceOverflow indicates that a vertex is reachable, but only by
	// paths whose length reaches the Infinity sentinel.
	ErrDistanceOverflow = errors.New("dijkstra: path length overflows the distance range")

	// ErrUnreachable indicates that a path was requested to a vertex whose
	// distance is still Infinity.
	ErrUnreachable = errors.New("dijkstra: destination is unreachable")

	// ErrPredecessorCycle indicates that walking predecessor links did not
	// reach the source within VertexCount steps.
	ErrPredecessorCycle = errors.New("dijkstra: predecessor chain does not reach the source")

	// ErrBrokenPath indicates that two consecutive path vertices are not joined by an arc.
	ErrBrokenPath = errors.New("dijkstra: path hop has no connecting arc")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is core.Infinity (no obstacles).
type Options struct {
	MaxDistance      int64        // Maximum distance to explore
	InfEdgeThreshold int64        // Weight threshold above which edges are non-traversable
	Logger           *slog.Logger // Optional run summary sink
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and keep the Infinity sentinel.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger attaches a logger that receives one debug record per run.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns an Options struct initialized with defaults:
// no distance cap, no impassable edges, no logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      core.Infinity,
		InfEdgeThreshold: core.Infinity,
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Pops        int // heap entries popped, stale ones included
	Stale       int // popped entries discarded as stale
	Relaxations int // successful distance improvements
}

// Result holds the DistanceTable and PredecessorTable of one run.
//
// Dist[v] is the shortest distance from Source to v, or core.Infinity if v
// was not reached. Prev[v] is the vertex that last improved Dist[v]; every
// entry starts as Source, so Prev alone cannot tell reached from unreached.
// Always consult Dist first (Reconstruct does).
type Result struct {
	Source core.VertexID
	Dist   []int64
	Prev   []core.VertexID
	Stats  Stats
}
