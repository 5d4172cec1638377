// Package lvpath is a weighted shortest-path engine over one in-memory
// graph model.
//
// Two query modes share the graph:
//
//	dijkstra/   single source: distances and predecessors, lazy-deletion heap
//	matrix/     all pairs: Floyd–Warshall on a dense distance matrix, next-hop paths
//
// Supporting packages:
//
//	core/       Graph, Registry (name↔id), Arc, Edge, Infinity, sentinel errors
//	report/     text rendering of distance tables, routes, reachable sets, matrices
//	config/     TOML graph descriptions
//	builder/    deterministic graph generators for tests and benchmarks
//	cmd/lvpath  command-line front end
//
// Every edge weight must lie in [0, core.Infinity). Unreached vertices keep
// core.Infinity, which both engines use, so a Dijkstra distance table and
// the matching Floyd–Warshall row compare element by element.
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdgeByName("A", "B", 10)
//	_ = g.AddEdgeByName("B", "C", 5)
//	res, _ := dijkstra.DijkstraByName(g, "A")
//	_ = report.ShortestPaths(os.Stdout, g, res)
package lvpath
