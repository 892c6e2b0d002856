package queue_test

import (
	"fmt"

	"github.com/veltaran/algokit/queue"
)

// ExampleQueue hands work items through in arrival order.
func ExampleQueue() {
	q, err := queue.New[string]()
	if err != nil {
		fmt.Println("init:", err)
		return
	}
	defer q.Close()

	q.Push("fetch")
	q.Push("decode")
	q.Push("store")

	for {
		task, ok := q.Pop()
		if !ok {
			break
		}
		fmt.Println(task)
	}
	// Output:
	// fetch
	// decode
	// store
}
