// Package heap provides option and error definitions plus the pluggable
// element→slot Index contract for the indexed min-heap.
package heap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for heap construction and operations.
var (
	// ErrNilCompare is returned by New when no priority comparison is supplied.
	ErrNilCompare = errors.New("heap: nil priority comparison function")

	// ErrNilIndex is returned by New when no element index is supplied.
	ErrNilIndex = errors.New("heap: nil element index")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heap: invalid option supplied")

	// ErrCapacity is returned by Push when the heap already holds MaxCount
	// pairs. MaxCount is fixed by the caller at construction, so this is a
	// configuration error, not a transient condition.
	ErrCapacity = errors.New("heap: maximum pair count exceeded")

	// ErrNotFound is returned by Update when the element is not resident.
	ErrNotFound = errors.New("heap: element not present")
)

// CompareFunc reports the order of two priorities: negative when a sorts
// before b, zero when they are equal, positive when a sorts after b.
// It must define a total order over all priorities pushed into one heap.
type CompareFunc[P any] func(a, b P) int

// Index is the element→slot table injected into a Heap at construction.
// The heap drives its whole lifecycle: it is populated on push, remapped on
// every structural move, pruned on pop, and reset when the heap is closed.
//
// Implementations need not be safe for concurrent use; the heap never calls
// them from more than one goroutine at a time. Any strategy works as long as
// the contract below holds — this package ships MapIndex, ProbeIndex and
// DenseIndex, and callers may bring their own.
type Index[E any] interface {
	// Insert records elt→slot, overwriting any previous mapping for elt.
	Insert(elt E, slot int)

	// Search returns the slot recorded for elt, or false when absent.
	Search(elt E) (int, bool)

	// Remove deletes the mapping for elt and returns the prior slot,
	// or false when absent.
	Remove(elt E) (int, bool)

	// Len returns the number of live mappings.
	Len() int

	// Reset discards all mappings, keeping the index reusable.
	Reset()
}

// DefaultMinCount is the initial pair capacity when WithMinCount is not used.
const DefaultMinCount = 8

// Option configures a Heap at construction via functional arguments.
// An invalid Option is recorded and surfaced by New as ErrOptionViolation.
type Option[E any] func(*Options[E])

// Options holds the construction parameters of a Heap.
type Options[E any] struct {
	// MinCount is the initial pair capacity. Must be positive.
	MinCount int

	// MaxCount is the hard upper bound on resident pairs. Growth doubles
	// the capacity and clamps it to MaxCount; a push at MaxCount fails
	// with ErrCapacity.
	MaxCount int

	// OnFree, when non-nil, is invoked for every element still resident
	// when the heap is closed.
	OnFree func(E)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultMinCount initial capacity,
// effectively unbounded MaxCount, and no OnFree hook.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		MinCount: DefaultMinCount,
		MaxCount: math.MaxInt,
		OnFree:   nil,
		err:      nil,
	}
}

// WithMinCount sets the initial pair capacity. n must be positive.
func WithMinCount[E any](n int) Option[E] {
	return func(o *Options[E]) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MinCount must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MinCount = n
	}
}

// WithMaxCount caps the number of resident pairs. n must be positive and,
// combined with WithMinCount, not smaller than the initial capacity.
func WithMaxCount[E any](n int) Option[E] {
	return func(o *Options[E]) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCount must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCount = n
	}
}

// WithOnFree registers a hook invoked once per resident element on Close.
func WithOnFree[E any](fn func(E)) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.OnFree = fn
		}
	}
}
