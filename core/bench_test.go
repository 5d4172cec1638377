// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpath/core"
)

// BenchmarkAddEdgeByName measures name registration plus arc insertion.
func BenchmarkAddEdgeByName(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdgeByName("Root", fmt.Sprintf("N%d", i), int64(i))
	}
}

// BenchmarkNeighbors measures the engines' read contract on a star graph.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdgeByName("Root", fmt.Sprintf("N%d", i), int64(i))
	}
	g.Freeze()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}
