// Package queue provides a generic FIFO queue backed by a growable ring
// buffer.
//
// What
//
//   - Push at the tail, Pop/Peek at the head, in strict arrival order.
//   - Capacity doubles when full; the live window never moves otherwise,
//     so steady-state operation allocates nothing.
//   - Optional OnFree hook invoked per resident element on Close.
//
// Why
//
//   - Breadth-first traversals and producer/consumer hand-off need a queue
//     whose cost per operation is flat; slicing a Go slice from the front
//     instead keeps the backing array alive and re-allocates on append.
//
// Empty signal
//
//	Pop and Peek on an empty queue return a zero value and false. This is
//	the documented non-error signal, not a failure.
//
// Complexity (n = resident elements)
//
//   - Push: O(1) amortized; Pop/Peek: O(1); Memory: O(n)
//
// Usage
//
//	q, err := queue.New[int](queue.WithMinCount[int](64))
//	if err != nil { ... }
//	q.Push(1)
//	q.Push(2)
//	v, ok := q.Pop() // 1, true
//	q.Close()
//
// Concurrency: none; callers serialize access externally.
package queue
