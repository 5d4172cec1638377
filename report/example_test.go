package report_test

import (
	"os"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/report"
)

func ExampleShortestPaths() {
	g := core.NewGraph()
	_ = g.AddEdgeByName("A", "B", 10)
	_ = g.AddEdgeByName("B", "C", 5)
	_, _ = g.AddVertex("D")

	res, _ := dijkstra.DijkstraByName(g, "A")
	_ = report.ShortestPaths(os.Stdout, g, res)
	// Output:
	// Shortest paths from A:
	// To A: 0
	// To B: 10
	// To C: 15
	// To D: Unreachable
}
