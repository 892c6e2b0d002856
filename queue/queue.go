// Package queue implements a generic FIFO queue over a growable ring
// buffer: amortized O(1) push and pop, zero allocation on steady state.
package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("queue: invalid option supplied")
)

// DefaultMinCount is the initial capacity when WithMinCount is not used.
const DefaultMinCount = 8

// Option configures a Queue at construction.
type Option[T any] func(*Options[T])

// Options holds the construction parameters of a Queue.
type Options[T any] struct {
	// MinCount is the initial element capacity. Must be positive.
	MinCount int

	// OnFree, when non-nil, is invoked for every element still resident
	// when the queue is closed.
	OnFree func(T)

	err error
}

// DefaultOptions returns Options with DefaultMinCount capacity and no hook.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{MinCount: DefaultMinCount}
}

// WithMinCount sets the initial element capacity. n must be positive.
func WithMinCount[T any](n int) Option[T] {
	return func(o *Options[T]) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MinCount must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MinCount = n
	}
}

// WithOnFree registers a hook invoked once per resident element on Close.
func WithOnFree[T any](fn func(T)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnFree = fn
		}
	}
}

// Queue is a FIFO queue of T. Elements are copied in on Push and out on
// Pop; the queue never aliases caller memory afterwards. Not safe for
// concurrent use without external locking.
type Queue[T any] struct {
	elts   []T // ring buffer; live elements at [head, head+count) mod len
	head   int
	count  int
	onFree func(T)
}

// New constructs an empty Queue. Invalid options yield a nil queue and
// ErrOptionViolation.
func New[T any](opts ...Option[T]) (*Queue[T], error) {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Queue[T]{
		elts:   make([]T, o.MinCount),
		onFree: o.OnFree,
	}, nil
}

// Len returns the number of resident elements.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the current element capacity.
func (q *Queue[T]) Cap() int { return len(q.elts) }

// Push appends elt at the tail, doubling the ring when full.
// Complexity: O(1) amortized.
func (q *Queue[T]) Push(elt T) {
	if q.count == len(q.elts) {
		q.grow()
	}
	q.elts[(q.head+q.count)%len(q.elts)] = elt
	q.count++
}

// Pop removes and returns the head element. On an empty queue it returns
// a zero value and false — the same non-error empty signal the heap uses.
// Complexity: O(1).
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	elt := q.elts[q.head]
	q.elts[q.head] = zero // release references held by the dead cell
	q.head = (q.head + 1) % len(q.elts)
	q.count--

	return elt, true
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T

		return zero, false
	}

	return q.elts[q.head], true
}

// Close invokes the OnFree hook for every resident element and releases
// the ring. Safe to call more than once.
func (q *Queue[T]) Close() {
	if q.elts == nil {
		return
	}
	if q.onFree != nil {
		for i := 0; i < q.count; i++ {
			q.onFree(q.elts[(q.head+i)%len(q.elts)])
		}
	}
	q.elts = nil
	q.head = 0
	q.count = 0
}

// grow doubles the ring, unrolling the wrapped segment so the live window
// starts at 0 again.
func (q *Queue[T]) grow() {
	next := make([]T, 2*len(q.elts))
	for i := 0; i < q.count; i++ {
		next[i] = q.elts[(q.head+i)%len(q.elts)]
	}
	q.elts = next
	q.head = 0
}
