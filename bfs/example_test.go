package bfs_test

import (
	"fmt"

	"github.com/veltaran/algokit/bfs"
	"github.com/veltaran/algokit/graph"
)

// ExampleRun finds the fewest-hop route across a small relay network with
// one short and one long path between the endpoints.
func ExampleRun() {
	// 0 → 1 → 2 → 5 (three hops) versus 0 → 3 → 4 → 6 → 5 (four hops)
	g, _ := graph.New(7)
	for _, e := range [][2]int{
		{0, 1}, {1, 2}, {2, 5},
		{0, 3}, {3, 4}, {4, 6}, {6, 5},
	} {
		_ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := bfs.Run(g, 0)
	if err != nil {
		fmt.Println("bfs:", err)
		return
	}

	path, _ := res.PathTo(5)
	fmt.Println("hops:", res.Dist[5])
	fmt.Println("path:", path)
	// Output:
	// hops: 3
	// path: [0 1 2 5]
}
