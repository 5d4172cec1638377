// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, MaxDistance, InfEdgeThreshold,
// lazy-deletion bookkeeping, and edge cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// edge is a named weighted edge used by the fixtures below.
type edge struct {
	U, V string
	W    int64
}

// buildGraph adds every edge by name, in order.
func buildGraph(t testing.TB, directed bool, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddEdgeByName(e.U, e.V, e.W))
	}

	return g
}

// stations is the five-station monitoring network.
func stations(t testing.TB) *core.Graph {
	return buildGraph(t, false,
		edge{"A", "B", 10},
		edge{"A", "C", 15},
		edge{"B", "D", 12},
		edge{"C", "D", 10},
		edge{"D", "E", 5},
	)
}

// id resolves a name or fails the test.
func id(t testing.TB, g *core.Graph, name string) core.VertexID {
	t.Helper()
	v, err := g.VertexID(name)
	require.NoError(t, err)

	return v
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.DijkstraByName(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnknownSource(t *testing.T) {
	g := stations(t)

	_, err := dijkstra.Dijkstra(g, 99)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	_, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)

	_, err = dijkstra.DijkstraByName(g, "Z")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, err.Error(), `"Z"`)
}

func TestDijkstra_EmptyGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(core.NewGraph(), 0)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)
}

func TestDijkstra_NegativeWeightNeverReachesEngine(t *testing.T) {
	g := core.NewGraph()
	err := g.AddEdgeByName("A", "B", -5)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.ErrorIs(t, dijkstra.ErrInvalidWeight, core.ErrInvalidWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestDijkstra_Stations(t *testing.T) {
	g := stations(t)
	res, err := dijkstra.DijkstraByName(g, "A")
	require.NoError(t, err)

	want := map[string]int64{"A": 0, "B": 10, "C": 15, "D": 22, "E": 27}
	for name, d := range want {
		got, err := res.Distance(id(t, g, name))
		require.NoError(t, err)
		assert.Equal(t, d, got, "dist[%s]", name)
	}

	assert.Equal(t, id(t, g, "A"), res.Prev[id(t, g, "B")])
	assert.Equal(t, id(t, g, "B"), res.Prev[id(t, g, "D")])
	assert.Equal(t, id(t, g, "D"), res.Prev[id(t, g, "E")])
	assert.Equal(t, id(t, g, "A"), res.Prev[id(t, g, "A")], "source points home")
}

func TestDijkstra_SimpleTriangle(t *testing.T) {
	g := buildGraph(t, false, edge{"A", "B", 1}, edge{"B", "C", 2}, edge{"A", "C", 5})
	res, err := dijkstra.DijkstraByName(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 3}, res.Dist)
	assert.Equal(t, []core.VertexID{0, 0, 1}, res.Prev)
}

// ------------------------------------------------------------------------
// 3. Directed Graph Tests: Ensure correct handling of one-way edges.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	g := buildGraph(t, true,
		edge{"A", "B", 2},
		edge{"A", "C", 1},
		edge{"C", "B", 1},
		edge{"B", "D", 3},
		edge{"C", "D", 5},
	)
	res, err := dijkstra.DijkstraByName(g, "A")
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Dist[id(t, g, "C")])
	assert.Equal(t, int64(2), res.Dist[id(t, g, "B")])
	assert.Equal(t, int64(5), res.Dist[id(t, g, "D")])
	assert.Equal(t, id(t, g, "B"), res.Prev[id(t, g, "D")])

	// Nothing leads back into A.
	back, err := dijkstra.DijkstraByName(g, "D")
	require.NoError(t, err)
	assert.False(t, back.Reachable(id(t, g, "A")))
	assert.Equal(t, []core.VertexID{id(t, g, "D")}, back.ReachableVertices())
}

// ------------------------------------------------------------------------
// 4. MaxDistance / InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := buildGraph(t, false, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "D", 1})
	res, err := dijkstra.DijkstraByName(g, "A", dijkstra.WithMaxDistance(1))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, core.Infinity, core.Infinity}, res.Dist)
	assert.Equal(t, 2, res.Stats.Pops, "entries past the cap never enter the heap")
	assert.Equal(t, 1, res.Stats.Relaxations)
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g := buildGraph(t, false, edge{"A", "B", 1})
	res, err := dijkstra.DijkstraByName(g, "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, core.Infinity}, res.Dist)
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	g := buildGraph(t, false, edge{"A", "B", 2}, edge{"B", "C", 4}, edge{"A", "C", 10})

	res, err := dijkstra.DijkstraByName(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Dist[id(t, g, "C")])

	walled, err := dijkstra.DijkstraByName(g, "A", dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, int64(2), walled.Dist[id(t, g, "B")])
	assert.Equal(t, core.Infinity, walled.Dist[id(t, g, "C")], "both routes to C cross a wall")
}

// ------------------------------------------------------------------------
// 5. Lazy deletion, overflow, logging.
// ------------------------------------------------------------------------

// TestDijkstra_StaleEntriesSkipped builds a graph where B is first pushed at
// 10 and then improved to 2; the (10, B) entry must be discarded.
func TestDijkstra_StaleEntriesSkipped(t *testing.T) {
	g := buildGraph(t, false, edge{"A", "B", 10}, edge{"A", "C", 1}, edge{"C", "B", 1})
	res, err := dijkstra.DijkstraByName(g, "A")
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Dist[id(t, g, "B")])
	assert.Equal(t, id(t, g, "C"), res.Prev[id(t, g, "B")])
	assert.Equal(t, dijkstra.Stats{Pops: 4, Stale: 1, Relaxations: 3}, res.Stats)
}

func TestDijkstra_OverflowGuard(t *testing.T) {
	g := buildGraph(t, true, edge{"A", "B", core.Infinity - 1}, edge{"B", "C", 5})
	_, err := dijkstra.DijkstraByName(g, "A")
	assert.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)

	ok := buildGraph(t, true, edge{"A", "B", core.Infinity - 1})
	res, err := dijkstra.DijkstraByName(ok, "A")
	require.NoError(t, err)
	assert.Equal(t, core.Infinity-1, res.Dist[1], "largest finite distance stays distinct from the sentinel")
}

func TestDijkstra_HeavyEdgeThatNeverImproves(t *testing.T) {
	// B is finalized before C, so B–C is relaxed with a sum past the sentinel.
	g := buildGraph(t, false,
		edge{"A", "B", 2},
		edge{"A", "C", 5},
		edge{"B", "C", core.Infinity - 2},
	)
	res, err := dijkstra.DijkstraByName(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 5}, res.Dist)
	assert.Equal(t, []core.VertexID{0, 0, 0}, res.Prev)

	// Reversed: the heavy arc is seen first, the finite route arrives later.
	g = buildGraph(t, true,
		edge{"A", "B", 1},
		edge{"A", "D", 3},
		edge{"B", "C", core.Infinity - 1},
		edge{"D", "C", 4},
	)
	res, err = dijkstra.DijkstraByName(g, "A")
	require.NoError(t, err)
	c, err := g.VertexID("C")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Dist[c])
}

func TestDijkstra_OverflowBeyondCapIsUnreached(t *testing.T) {
	g := buildGraph(t, true, edge{"A", "B", 5}, edge{"B", "C", core.Infinity - 1})
	res, err := dijkstra.DijkstraByName(g, "A", dijkstra.WithMaxDistance(10))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, core.Infinity}, res.Dist)
}

func TestDijkstra_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := dijkstra.DijkstraByName(stations(t), "A", dijkstra.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dijkstra: run complete")
	assert.Contains(t, buf.String(), "vertices=5")
}

// ------------------------------------------------------------------------
// 6. Edge Cases: Single vertex, isolated vertex, self-loop, idempotence.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	solo, err := g.AddVertex("Solo")
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, solo)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, res.Dist)
	assert.Equal(t, []core.VertexID{solo}, res.Prev)
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdgeByName("X", "X", 0))

	res, err := dijkstra.DijkstraByName(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, res.Dist)

	p, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{0}, p)
}

func TestDijkstra_IsolatedVertexUnreachable(t *testing.T) {
	g := stations(t)
	iso, err := g.AddVertex("Isolated")
	require.NoError(t, err)

	for src := 0; src < g.VertexCount(); src++ {
		if core.VertexID(src) == iso {
			continue
		}
		res, err := dijkstra.Dijkstra(g, core.VertexID(src))
		require.NoError(t, err)
		assert.Equal(t, core.Infinity, res.Dist[iso])
		_, err = res.PathTo(iso)
		assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	}
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := stations(t)
	g.Freeze()

	first, err := dijkstra.DijkstraByName(g, "C")
	require.NoError(t, err)
	second, err := dijkstra.DijkstraByName(g, "C")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	first.Dist[0] = -1
	assert.NotEqual(t, first.Dist[0], second.Dist[0], "results must not share tables")
}
