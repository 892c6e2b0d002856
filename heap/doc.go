// Package heap provides a generic indexed binary min-heap: (priority,
// element) pairs stored in an array-backed binary tree, with an injected
// element→slot Index kept consistent on every structural move.
//
// What
//
//   - Push, Pop: the usual O(log n) binary-heap operations.
//   - Search: O(1)-expected membership lookup returning a pointer to the
//     resident priority (valid until the next mutating call).
//   - Update: O(log n) priority change of an arbitrary resident element,
//     located directly through the index — no linear scan.
//   - Pluggable Index strategies: MapIndex (Go map), ProbeIndex (open
//     addressing with caller-supplied hash/equality), DenseIndex (plain
//     array for small fixed integer domains), or any caller implementation.
//   - Optional OnFree hook invoked per resident element on Close.
//
// Why
//
//   - container/heap's Interface cannot track where an element currently
//     sits, so decrease-key consumers (Prim, Dijkstra, schedulers) either
//     scan, or push duplicates and filter stale entries on pop. An indexed
//     heap relaxes entries in place.
//   - Sift walks use half-swaps: the moving pair is buffered once,
//     displaced pairs are copied into vacated slots with one index remap
//     each, and the buffered pair is written exactly once at its final
//     slot — one pair copy and one index write per moved level instead of
//     three and two for a naive swap chain.
//
// Invariants
//
//   - Heap order: every non-root slot's priority compares >= its parent's.
//   - Index consistency: after any operation, every resident element maps
//     to the slot that holds it, with no stale entries.
//   - Uniqueness: one heap entry per element value. Not validated by Push;
//     the caller checks membership with Search first when in doubt.
//
// Determinism
//
//	Equal-priority siblings are resolved left before right, so pop order
//	is reproducible for a fixed push sequence.
//
// Concurrency
//
//	None. The pair array and the index mutate non-atomically with respect
//	to each other; callers serialize all access externally.
//
// Complexity (n = resident pairs)
//
//   - Push/Pop/Update: O(log n) (Push amortized over capacity doubling)
//   - Search: O(1) expected under the index's hashing guarantee
//   - Memory: O(n) pairs + the index's own footprint
//
// Usage
//
//	h, err := heap.New[int64, string](
//	    func(a, b int64) int { return int(a - b) },
//	    heap.NewMapIndex[string](),
//	    heap.WithMinCount[string](64),
//	)
//	if err != nil { ... }
//	_ = h.Push(5, "deploy")
//	_ = h.Push(1, "page-oncall")
//	if _, ok := h.Search("deploy"); ok {
//	    _ = h.Update(0, "deploy") // jump the queue
//	}
//	pty, elt, ok := h.Pop() // 0, "deploy", true
//	h.Close()
//
// Errors
//
//   - ErrNilCompare, ErrNilIndex, ErrOptionViolation from New.
//   - ErrCapacity from Push at MaxCount (configuration error).
//   - ErrNotFound from Update on an absent element.
//   - Empty Pop is not an error: zero values and false.
package heap
