package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// ExampleGrid routes across a 3×3 unit-weight grid: the far corner is four hops away.
func ExampleGrid() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := dijkstra.DijkstraByName(g, builder.GridID(0, 0))
	far, _ := g.VertexID(builder.GridID(2, 2))
	fmt.Println(g.VertexCount(), g.EdgeCount(), res.Dist[far])
	// Output: 9 12 4
}
