package heap_test

import (
	"fmt"

	"github.com/veltaran/algokit/heap"
)

// ExampleHeap schedules named tasks by deadline and reprioritizes one of
// them in place — the operation a plain binary heap cannot do without a
// linear scan.
func ExampleHeap() {
	h, err := heap.New[int, string](
		func(a, b int) int { return a - b },
		heap.NewMapIndex[string](),
	)
	if err != nil {
		fmt.Println("init:", err)
		return
	}
	defer h.Close()

	_ = h.Push(50, "backup")
	_ = h.Push(30, "reindex")
	_ = h.Push(80, "report")
	_ = h.Push(10, "health-check")

	// an incident: the report is now due immediately
	if _, ok := h.Search("report"); ok {
		_ = h.Update(0, "report")
	}

	for {
		deadline, task, ok := h.Pop()
		if !ok {
			break
		}
		fmt.Printf("%d %s\n", deadline, task)
	}
	// Output:
	// 0 report
	// 10 health-check
	// 30 reindex
	// 50 backup
}

// ExampleHeap_denseIndex keys the heap by vertex number through a plain
// array index, the configuration the graph algorithms in this module use.
func ExampleHeap_denseIndex() {
	idx, _ := heap.NewDenseIndex(8)
	h, _ := heap.New[int64, int](
		func(a, b int64) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
		idx,
		heap.WithMaxCount[int](8),
	)
	defer h.Close()

	_ = h.Push(14, 2)
	_ = h.Push(3, 5)
	_ = h.Update(1, 2) // decrease-key via the array index

	pty, vertex, _ := h.Pop()
	fmt.Println(pty, vertex)
	// Output:
	// 1 2
}
