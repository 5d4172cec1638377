// Package builder generates deterministic weighted graphs for tests,
// benchmarks and demos of the shortest-path engines.
//
// The package offers the following key components:
//
//   - BuildGraph: creates a core.Graph and applies Constructors in order.
//   - Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Vertex names (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), SymbolNumberIDFn(prefix).
//   - Edge weights (WeightFn): ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     down to vertex IDs and edge order.
//   - Option constructors panic on meaningless values; Constructors never
//     panic and return sentinel errors.
//   - Every generated weight lies in [0, core.Infinity), so generated graphs
//     are valid input for dijkstra and matrix.
package builder
