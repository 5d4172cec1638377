package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/matrix"
)

// ExampleFloydWarshall closes the four-node directed monitoring network.
func ExampleFloydWarshall() {
	d, err := matrix.FromRows([][]int64{
		{0, 5, matrix.Inf, 10},
		{matrix.Inf, 0, 3, matrix.Inf},
		{matrix.Inf, matrix.Inf, 0, 1},
		{matrix.Inf, matrix.Inf, matrix.Inf, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = matrix.FloydWarshall(d); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)
	// Output:
	// [0, 5, 8, 9]
	// [INF, 0, 3, 4]
	// [INF, INF, 0, 1]
	// [INF, INF, INF, 0]
}

// ExamplePaths_Path rebuilds a route from the next-hop table.
func ExamplePaths_Path() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdgeByName("A", "B", 5)
	_ = g.AddEdgeByName("A", "D", 10)
	_ = g.AddEdgeByName("B", "C", 3)
	_ = g.AddEdgeByName("C", "D", 1)

	a, _ := g.VertexID("A")
	d, _ := g.VertexID("D")

	p, _ := matrix.AllPairs(g)
	path, _ := p.Path(a, d)
	for i, v := range path {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(g.Name(v))
	}
	cost, _ := p.Distance(a, d)
	fmt.Printf("\tTotal cost: %d\n", cost)
	// Output: A -> B -> C -> D	Total cost: 9
}
