// Package heap implements a generic binary min-heap that keeps an injected
// element→slot index consistent with the pair array on every structural move,
// adding O(1)-expected membership lookup and O(log n) priority update of any
// resident element to the usual O(log n) push/pop.
package heap

import "fmt"

// pair is one (priority, element) record; slot i's children live at slots
// 2i+1 and 2i+2, its parent at (i-1)/2.
type pair[P, E any] struct {
	pty P
	elt E
}

// Heap is an indexed binary min-heap over priorities P and elements E.
//
// Each resident element must be unique under the injected Index; pushing an
// element that is already resident corrupts the index and is the caller's
// responsibility to avoid (membership can be checked first with Search).
//
// A Heap performs no synchronization and is not safe for concurrent use
// without external locking: the pair array and the index are mutated
// non-atomically with respect to each other.
type Heap[P, E any] struct {
	pairs    []pair[P, E] // live pairs at [0, len); cap grows by doubling
	maxCount int
	cmp      CompareFunc[P]
	index    Index[E]
	onFree   func(E)
}

// New constructs an empty Heap with the given priority comparison and
// element index. New never returns a partially initialized heap: any
// violation (nil cmp, nil index, bad Option, MaxCount below MinCount)
// yields a nil heap and a sentinel error.
//
// Complexity: O(MinCount) allocation.
func New[P, E any](cmp CompareFunc[P], index Index[E], opts ...Option[E]) (*Heap[P, E], error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}
	if index == nil {
		return nil, ErrNilIndex
	}
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxCount < o.MinCount {
		return nil, fmt.Errorf("%w: MaxCount %d below MinCount %d",
			ErrOptionViolation, o.MaxCount, o.MinCount)
	}

	return &Heap[P, E]{
		pairs:    make([]pair[P, E], 0, o.MinCount),
		maxCount: o.MaxCount,
		cmp:      cmp,
		index:    index,
		onFree:   o.OnFree,
	}, nil
}

// Len returns the number of resident pairs.
func (h *Heap[P, E]) Len() int { return len(h.pairs) }

// Cap returns the current pair capacity (grows, never shrinks).
func (h *Heap[P, E]) Cap() int { return cap(h.pairs) }

// MaxCount returns the hard upper bound on resident pairs.
func (h *Heap[P, E]) MaxCount() int { return h.maxCount }

// Push inserts a (priority, element) pair and restores heap order.
// The element's value must not already be resident; Push does not validate
// uniqueness. Returns ErrCapacity when the heap already holds MaxCount pairs.
//
// Complexity: O(log n) amortized.
func (h *Heap[P, E]) Push(pty P, elt E) error {
	if len(h.pairs) == cap(h.pairs) {
		if err := h.grow(); err != nil {
			return err
		}
	}
	slot := len(h.pairs)
	h.pairs = append(h.pairs, pair[P, E]{pty: pty, elt: elt})
	h.index.Insert(elt, slot)
	h.siftUp(slot)

	return nil
}

// Search returns a pointer to the priority of a resident element, or false
// when the element is absent. The pointer stays valid only until the next
// mutating heap operation (Push, Pop, Update, Close).
//
// Complexity: O(1) expected, bounded by the index's lookup guarantee.
func (h *Heap[P, E]) Search(elt E) (*P, bool) {
	slot, ok := h.index.Search(elt)
	if !ok {
		return nil, false
	}

	return &h.pairs[slot].pty, true
}

// Update replaces the priority of a resident element and restores heap
// order, sifting up first and, when the element did not move, down.
// Returns ErrNotFound when the element is absent.
//
// Complexity: O(log n).
func (h *Heap[P, E]) Update(pty P, elt E) error {
	slot, ok := h.index.Search(elt)
	if !ok {
		return ErrNotFound
	}
	h.pairs[slot].pty = pty
	if h.siftUp(slot) == slot {
		h.siftDown(slot)
	}

	return nil
}

// Pop removes and returns the pair with the minimal priority. On an empty
// heap it returns zero values and false; this is the documented non-error
// empty signal, not a failure.
//
// Complexity: O(log n).
func (h *Heap[P, E]) Pop() (P, E, bool) {
	if len(h.pairs) == 0 {
		var zp P
		var ze E

		return zp, ze, false
	}
	root := h.pairs[0]
	h.index.Remove(root.elt)
	last := len(h.pairs) - 1
	if last > 0 {
		// relocate the last pair into the vacated root slot
		h.pairs[0] = h.pairs[last]
		h.index.Insert(h.pairs[0].elt, 0)
	}
	h.pairs[last] = pair[P, E]{} // release references held by the dead slot
	h.pairs = h.pairs[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root.pty, root.elt, true
}

// Close invokes the OnFree hook for every resident element, releases the
// backing storage, and resets the index. Safe to call more than once; any
// other operation after Close is undefined.
func (h *Heap[P, E]) Close() {
	if h.index == nil {
		return
	}
	if h.onFree != nil {
		for i := range h.pairs {
			h.onFree(h.pairs[i].elt)
		}
	}
	h.pairs = nil
	h.index.Reset()
	h.index = nil
}

// grow doubles the pair capacity, clamping at maxCount. Amortized constant
// overhead per push. Returns ErrCapacity when already at maxCount.
func (h *Heap[P, E]) grow() error {
	c := cap(h.pairs)
	if c >= h.maxCount {
		return fmt.Errorf("%w: MaxCount %d reached", ErrCapacity, h.maxCount)
	}
	next := c * 2
	if next > h.maxCount || next < c {
		next = h.maxCount
	}
	grown := make([]pair[P, E], len(h.pairs), next)
	copy(grown, h.pairs)
	h.pairs = grown

	return nil
}

// siftUp restores heap order from slot i toward the root and returns the
// slot where the sifted pair settled.
//
// The moving pair is buffered once; each displaced parent is half-swapped
// down into the vacated slot with a single index remap, and the buffered
// pair is written (and remapped) exactly once at its final slot.
func (h *Heap[P, E]) siftUp(i int) int {
	moving := h.pairs[i]
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.pairs[parent].pty, moving.pty) <= 0 {
			break
		}
		h.pairs[i] = h.pairs[parent]
		h.index.Insert(h.pairs[i].elt, i)
		i = parent
	}
	h.pairs[i] = moving
	h.index.Insert(moving.elt, i)

	return i
}

// siftDown restores heap order from slot i toward the leaves and returns
// the slot where the sifted pair settled. Same half-swap scheme as siftUp;
// on equal child priorities the left child is preferred.
func (h *Heap[P, E]) siftDown(i int) int {
	moving := h.pairs[i]
	n := len(h.pairs)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.cmp(h.pairs[right].pty, h.pairs[child].pty) < 0 {
			child = right
		}
		if h.cmp(moving.pty, h.pairs[child].pty) <= 0 {
			break
		}
		h.pairs[i] = h.pairs[child]
		h.index.Insert(h.pairs[i].elt, i)
		i = child
	}
	h.pairs[i] = moving
	h.index.Insert(moving.elt, i)

	return i
}
