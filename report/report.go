package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/matrix"
)

// ErrNilInput is returned when the graph or result to render is nil.
var ErrNilInput = errors.New("report: nil graph or result")

// printer keeps the first write error so renderers can write unconditionally.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// ShortestPaths writes one line per vertex with its distance from the source.
func ShortestPaths(w io.Writer, g *core.Graph, res *dijkstra.Result, opts ...Option) error {
	if g == nil || res == nil {
		return ErrNilInput
	}
	o := newOptions(opts)
	p := &printer{w: w}

	p.printf("Shortest paths from %s:\n", g.Label(res.Source))
	for v, d := range res.Dist {
		id := core.VertexID(v)
		if d == core.Infinity {
			p.printf("To %s: Unreachable\n", g.Label(id))
			continue
		}
		p.printf("To %s: %s\n", g.Label(id), o.distance(d))
	}

	return p.err
}

// Reachable lists every vertex the source reached, itself included at 0.
func Reachable(w io.Writer, g *core.Graph, res *dijkstra.Result, opts ...Option) error {
	if g == nil || res == nil {
		return ErrNilInput
	}
	o := newOptions(opts)
	p := &printer{w: w}

	p.printf("Reachable Nodes from %s:\n", g.Label(res.Source))
	for _, v := range res.ReachableVertices() {
		p.printf("%s (Distance: %s)\n", g.Label(v), o.distance(res.Dist[v]))
	}

	return p.err
}

// Routes writes the shortest route to every other vertex. Vertices with no
// route are reported as unreachable rather than skipped.
func Routes(w io.Writer, g *core.Graph, res *dijkstra.Result, opts ...Option) error {
	if g == nil || res == nil {
		return ErrNilInput
	}
	o := newOptions(opts)
	p := &printer{w: w}

	for v := range res.Dist {
		dst := core.VertexID(v)
		if dst == res.Source {
			continue
		}
		path, err := res.PathTo(dst)
		if errors.Is(err, dijkstra.ErrUnreachable) {
			p.printf("%s -> %s\tUnreachable\n", g.Label(res.Source), g.Label(dst))
			continue
		}
		if err != nil {
			return err
		}
		p.printf("%s\tTotal cost: %s\n", joinPath(g, path), o.distance(res.Dist[v]))
	}

	return p.err
}

// Matrix writes an all-pairs distance matrix. Rows are prefixed with the
// vertex label when g is non-nil.
func Matrix(w io.Writer, g *core.Graph, d *matrix.Dense, opts ...Option) error {
	if d == nil {
		return ErrNilInput
	}
	o := newOptions(opts)
	p := &printer{w: w}

	p.printf("All-Pairs Shortest Paths:\n")
	cells := make([]string, d.Cols())
	for i := 0; i < d.Rows(); i++ {
		row, err := d.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			cells[j] = o.distance(v)
		}
		if g != nil {
			p.printf("%s: ", g.Label(core.VertexID(i)))
		}
		p.printf("%s\n", strings.Join(cells, " "))
	}

	return p.err
}

func joinPath(g *core.Graph, path []core.VertexID) string {
	labels := make([]string, len(path))
	for i, v := range path {
		labels[i] = g.Label(v)
	}

	return strings.Join(labels, " -> ")
}
