package heap

import (
	"errors"
	"fmt"
)

// Sentinel errors for index construction.
var (
	// ErrNilHash is returned by NewProbeIndex when no hash function is supplied.
	ErrNilHash = errors.New("heap: nil hash function")

	// ErrNilEqual is returned by NewProbeIndex when no equality function is supplied.
	ErrNilEqual = errors.New("heap: nil equality function")

	// ErrBadDomain is returned by NewDenseIndex for a non-positive domain.
	ErrBadDomain = errors.New("heap: index domain must be positive")
)

// MapIndex is the default Index: a Go map from element value to slot.
// Elements only need to be comparable.
type MapIndex[E comparable] struct {
	m map[E]int
}

// NewMapIndex returns an empty MapIndex.
func NewMapIndex[E comparable]() *MapIndex[E] {
	return &MapIndex[E]{m: make(map[E]int)}
}

// Insert records elt→slot, overwriting any previous mapping.
func (x *MapIndex[E]) Insert(elt E, slot int) { x.m[elt] = slot }

// Search returns the slot recorded for elt.
func (x *MapIndex[E]) Search(elt E) (int, bool) {
	slot, ok := x.m[elt]

	return slot, ok
}

// Remove deletes the mapping for elt and returns the prior slot.
func (x *MapIndex[E]) Remove(elt E) (int, bool) {
	slot, ok := x.m[elt]
	if ok {
		delete(x.m, elt)
	}

	return slot, ok
}

// Len returns the number of live mappings.
func (x *MapIndex[E]) Len() int { return len(x.m) }

// Reset discards all mappings.
func (x *MapIndex[E]) Reset() { x.m = make(map[E]int) }

// DenseIndex maps small non-negative integer elements to slots through a
// plain array — the cheapest possible index when the element domain is a
// fixed range [0, domain), as with graph vertex numbers. Lookup is O(1)
// worst case, not just expected.
type DenseIndex struct {
	slots []int // -1 marks an absent element
	live  int
}

// NewDenseIndex returns a DenseIndex for elements in [0, domain).
// Elements outside the domain are out of contract and panic on access.
func NewDenseIndex(domain int) (*DenseIndex, error) {
	if domain <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDomain, domain)
	}
	x := &DenseIndex{slots: make([]int, domain)}
	for i := range x.slots {
		x.slots[i] = -1
	}

	return x, nil
}

// Insert records elt→slot, overwriting any previous mapping.
func (x *DenseIndex) Insert(elt, slot int) {
	if x.slots[elt] < 0 {
		x.live++
	}
	x.slots[elt] = slot
}

// Search returns the slot recorded for elt.
func (x *DenseIndex) Search(elt int) (int, bool) {
	slot := x.slots[elt]

	return slot, slot >= 0
}

// Remove deletes the mapping for elt and returns the prior slot.
func (x *DenseIndex) Remove(elt int) (int, bool) {
	slot := x.slots[elt]
	if slot < 0 {
		return 0, false
	}
	x.slots[elt] = -1
	x.live--

	return slot, true
}

// Len returns the number of live mappings.
func (x *DenseIndex) Len() int { return x.live }

// Reset discards all mappings, keeping the domain.
func (x *DenseIndex) Reset() {
	for i := range x.slots {
		x.slots[i] = -1
	}
	x.live = 0
}

// HashFunc hashes an element to a bucket selector for ProbeIndex.
type HashFunc[E any] func(E) uint64

// EqualFunc reports whether two elements are the same element for
// ProbeIndex membership purposes.
type EqualFunc[E any] func(a, b E) bool

// probeState is the occupancy marker of one open-addressing cell.
type probeState uint8

const (
	cellEmpty probeState = iota
	cellLive
	cellDead // tombstone left by Remove
)

// probeCell is one open-addressing table cell.
type probeCell[E any] struct {
	state probeState
	elt   E
	slot  int
}

// probeMinCells is the initial (and post-Reset) table size; always a power
// of two so the probe sequence can mask instead of mod.
const probeMinCells = 16

// ProbeIndex is an open-addressing Index with linear probing and tombstone
// deletion, for element types that are not comparable or that need a custom
// identity. The table doubles whenever live+dead cells exceed half the
// table, which also compacts tombstones away.
type ProbeIndex[E any] struct {
	hash  HashFunc[E]
	eq    EqualFunc[E]
	cells []probeCell[E]
	live  int
	used  int // live plus tombstones
}

// NewProbeIndex returns an empty ProbeIndex using the supplied hash and
// equality functions.
func NewProbeIndex[E any](hash HashFunc[E], eq EqualFunc[E]) (*ProbeIndex[E], error) {
	if hash == nil {
		return nil, ErrNilHash
	}
	if eq == nil {
		return nil, ErrNilEqual
	}

	return &ProbeIndex[E]{
		hash:  hash,
		eq:    eq,
		cells: make([]probeCell[E], probeMinCells),
	}, nil
}

// Insert records elt→slot, overwriting any previous mapping.
func (x *ProbeIndex[E]) Insert(elt E, slot int) {
	if 2*(x.used+1) > len(x.cells) {
		x.rehash(2 * len(x.cells))
	}
	mask := uint64(len(x.cells) - 1)
	i := x.hash(elt) & mask
	firstDead := -1
	for {
		c := &x.cells[i]
		switch c.state {
		case cellLive:
			if x.eq(c.elt, elt) {
				c.slot = slot

				return
			}
		case cellDead:
			if firstDead < 0 {
				firstDead = int(i)
			}
		case cellEmpty:
			if firstDead >= 0 {
				// reuse the earliest tombstone on the probe path
				i = uint64(firstDead)
			} else {
				x.used++
			}
			x.cells[i] = probeCell[E]{state: cellLive, elt: elt, slot: slot}
			x.live++

			return
		}
		i = (i + 1) & mask
	}
}

// Search returns the slot recorded for elt.
func (x *ProbeIndex[E]) Search(elt E) (int, bool) {
	mask := uint64(len(x.cells) - 1)
	i := x.hash(elt) & mask
	for {
		c := &x.cells[i]
		switch c.state {
		case cellLive:
			if x.eq(c.elt, elt) {
				return c.slot, true
			}
		case cellEmpty:
			return 0, false
		}
		i = (i + 1) & mask
	}
}

// Remove deletes the mapping for elt and returns the prior slot.
func (x *ProbeIndex[E]) Remove(elt E) (int, bool) {
	mask := uint64(len(x.cells) - 1)
	i := x.hash(elt) & mask
	for {
		c := &x.cells[i]
		switch c.state {
		case cellLive:
			if x.eq(c.elt, elt) {
				slot := c.slot
				var ze E
				*c = probeCell[E]{state: cellDead, elt: ze}
				x.live--

				return slot, true
			}
		case cellEmpty:
			return 0, false
		}
		i = (i + 1) & mask
	}
}

// Len returns the number of live mappings.
func (x *ProbeIndex[E]) Len() int { return x.live }

// Reset discards all mappings and shrinks the table back to its minimum.
func (x *ProbeIndex[E]) Reset() {
	x.cells = make([]probeCell[E], probeMinCells)
	x.live = 0
	x.used = 0
}

// rehash moves live cells into a fresh table of n cells, dropping tombstones.
func (x *ProbeIndex[E]) rehash(n int) {
	old := x.cells
	x.cells = make([]probeCell[E], n)
	x.live = 0
	x.used = 0
	for i := range old {
		if old[i].state == cellLive {
			x.Insert(old[i].elt, old[i].slot)
		}
	}
}
