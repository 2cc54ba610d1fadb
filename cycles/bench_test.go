package cycles_test

import (
	"fmt"
	"testing"

	"github.com/antoine-coulon/dag-go/core"
	"github.com/antoine-coulon/dag-go/cycles"
)

// buildRing constructs a single directed ring of n vertices:
// N0 → N1 → ... → N(n-1) → N0.
func buildRing(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertices(core.Vertex{ID: fmt.Sprintf("N%d", i)})
	}
	for i := 0; i < n; i++ {
		g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i+1)%n))
	}

	return g
}

// BenchmarkFindCycles_Ring1000 measures detection on a 1,000-vertex ring:
// every origin walks the full ring, so this exercises the O(V·(V+E)) bound.
func BenchmarkFindCycles_Ring1000(b *testing.B) {
	g := buildRing(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := cycles.FindCycles(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindCycles_Ring1000_Bounded measures the same ring with a depth
// bound far below the ring length: every branch is cut off early.
func BenchmarkFindCycles_Ring1000_Bounded(b *testing.B) {
	g := buildRing(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := cycles.FindCycles(g, cycles.WithMaxDepth(8)); err != nil {
			b.Fatal(err)
		}
	}
}
