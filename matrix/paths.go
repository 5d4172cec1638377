package matrix

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvpath/core"
)

// noHop marks a next-hop cell with no known route.
const noHop = -1

// Paths is the result of AllPairs: the shortest-distance matrix plus a
// next-hop table for rebuilding any route.
type Paths struct {
	Dist *Dense
	next []int // next[i*n+j] = first hop after i on a shortest i→j route
}

// Option configures AllPairs.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger attaches a logger that receives one debug record per run.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// AllPairs runs Floyd–Warshall over g and keeps next hops for Path.
//
// Errors: ErrGraphNil, ErrBadShape (empty graph), ErrInvalidWeight,
// ErrDistanceOverflow.
// Complexity: Time O(V³), Space O(V²).
func AllPairs(g *core.Graph, opts ...Option) (*Paths, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	d, err := FromGraph(g)
	if err != nil {
		return nil, matrixErrorf("AllPairs", err)
	}

	n := d.r
	next := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				next[i*n+j] = i
			case d.data[i*n+j] != Inf:
				next[i*n+j] = j
			default:
				next[i*n+j] = noHop
			}
		}
	}

	if err = floydWarshallInPlace(d, next); err != nil {
		return nil, matrixErrorf("AllPairs", err)
	}

	if cfg.logger != nil {
		cfg.logger.Debug("matrix: all-pairs complete", "vertices", n, "finite", countFinite(d))
	}

	return &Paths{Dist: d, next: next}, nil
}

// Distance returns the shortest i→j distance, Inf if there is none.
func (p *Paths) Distance(i, j core.VertexID) (int64, error) {
	return p.Dist.At(int(i), int(j))
}

// Path returns the vertices of a shortest i→j route, both ends included.
//
// Errors: ErrOutOfRange, ErrUnreachable.
// Complexity: O(path length).
func (p *Paths) Path(i, j core.VertexID) ([]core.VertexID, error) {
	dij, err := p.Dist.At(int(i), int(j))
	if err != nil {
		return nil, matrixErrorf("Path", err)
	}
	if dij == Inf {
		return nil, fmt.Errorf("Path(%d,%d): %w", i, j, ErrUnreachable)
	}

	n := p.Dist.r
	path := []core.VertexID{i}
	for u := int(i); u != int(j); {
		u = p.next[u*n+int(j)]
		if u == noHop || len(path) > n {
			return nil, fmt.Errorf("Path(%d,%d): broken next-hop chain: %w", i, j, ErrUnreachable)
		}
		path = append(path, core.VertexID(u))
	}

	return path, nil
}

// countFinite returns the number of finite cells.
func countFinite(d *Dense) int {
	c := 0
	for _, v := range d.data {
		if v != Inf {
			c++
		}
	}

	return c
}
