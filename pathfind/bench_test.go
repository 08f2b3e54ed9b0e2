package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/routenav/builder"
	"github.com/katalvlaran/routenav/core"
	"github.com/katalvlaran/routenav/pathfind"
)

func benchNetwork(b *testing.B, n int) *core.Graph {
	b.Helper()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithNamePool(nil)},
		builder.RoadNetwork(n, 4000, 2500),
	)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func benchmarkFind(b *testing.B, algo pathfind.Algorithm) {
	g := benchNetwork(b, 500)
	end := core.NodeID(g.NodeCount() - 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.Find(g, 0, end, algo); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra measures one corner-to-corner search on 500 nodes.
func BenchmarkDijkstra(b *testing.B) { benchmarkFind(b, pathfind.AlgorithmDijkstra) }

// BenchmarkAStar measures the same search guided by the Euclidean heuristic.
func BenchmarkAStar(b *testing.B) { benchmarkFind(b, pathfind.AlgorithmAStar) }
