// Package mergesort implements a stable, parallel merge sort with tunable
// cutoffs for when to stop spawning goroutines and fall back to sequential
// sorting and merging.
package mergesort

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Sentinel errors for sort configuration.
var (
	// ErrNilCompare is returned when no comparison function is supplied.
	ErrNilCompare = errors.New("mergesort: nil comparison function")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mergesort: invalid option supplied")
)

// CompareFunc reports the order of two elements: negative when a sorts
// before b, zero when equal, positive when a sorts after b.
type CompareFunc[T any] func(a, b T) int

// DefaultSortCutoff is the segment size at or below which a half is sorted
// sequentially instead of splitting into two goroutines.
const DefaultSortCutoff = 1 << 11

// DefaultMergeCutoff is the combined run size at or below which two runs
// are merged sequentially instead of splitting the merge.
const DefaultMergeCutoff = 1 << 12

// Option configures a Sort call.
type Option func(*Options)

// Options holds the tuning parameters of one Sort call.
type Options struct {
	// Ctx allows cancellation; checked at every recursive split.
	Ctx context.Context

	// SortCutoff bounds goroutine fan-out during the divide phase.
	SortCutoff int

	// MergeCutoff bounds goroutine fan-out during the merge phase.
	MergeCutoff int

	err error
}

// DefaultOptions returns Options with background context and the default
// cutoffs.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		SortCutoff:  DefaultSortCutoff,
		MergeCutoff: DefaultMergeCutoff,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSortCutoff sets the sequential-sort segment size. n must be positive.
func WithSortCutoff(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: SortCutoff must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.SortCutoff = n
	}
}

// WithMergeCutoff sets the sequential-merge run size. n must be positive.
func WithMergeCutoff(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MergeCutoff must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MergeCutoff = n
	}
}

// sorter carries the per-call state shared by the recursive phases.
type sorter[T any] struct {
	s    []T
	aux  []T
	cmp  CompareFunc[T]
	opts Options
}

// Sort sorts s in place, stably: elements comparing equal keep their input
// order. Segments larger than SortCutoff are sorted by two goroutines, and
// run pairs larger than MergeCutoff are merged by two goroutines, so the
// total fan-out adapts to the input size.
//
// Complexity: O(n log n) work, O(n log n / p) expected span for p cores,
// O(n) auxiliary memory.
func Sort[T any](s []T, cmp CompareFunc[T], opts ...Option) error {
	if cmp == nil {
		return ErrNilCompare
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if len(s) < 2 {
		return nil
	}

	srt := &sorter[T]{s: s, aux: make([]T, len(s)), cmp: cmp, opts: o}

	return srt.sortRange(o.Ctx, 0, len(s))
}

// sortRange stably sorts s[lo:hi] using aux[lo:hi] as merge scratch.
func (srt *sorter[T]) sortRange(ctx context.Context, lo, hi int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	size := hi - lo
	if size <= srt.opts.SortCutoff {
		seg := srt.s[lo:hi]
		sort.SliceStable(seg, func(i, j int) bool { return srt.cmp(seg[i], seg[j]) < 0 })

		return nil
	}

	mid := lo + size/2
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srt.sortRange(gctx, lo, mid) })
	g.Go(func() error { return srt.sortRange(gctx, mid, hi) })
	if err := g.Wait(); err != nil {
		return err
	}

	if err := srt.merge(ctx, srt.s[lo:mid], srt.s[mid:hi], srt.aux[lo:hi]); err != nil {
		return err
	}
	copy(srt.s[lo:hi], srt.aux[lo:hi])

	return nil
}

// merge stably merges sorted runs left and right into dst
// (len(dst) == len(left)+len(right)), splitting large merges in two.
//
// The split picks the middle element of the larger run as a pivot and
// bisects the other run at the first element not sorting before the pivot,
// so equal elements from the left run always land ahead of equal elements
// from the right run.
func (srt *sorter[T]) merge(ctx context.Context, left, right, dst []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(left)+len(right) <= srt.opts.MergeCutoff {
		srt.seqMerge(left, right, dst)

		return nil
	}
	if len(left) < len(right) {
		// keep the bisected run on the left-run side of the argument list
		// by splitting around a right-run pivot instead
		mid := len(right) / 2
		pivot := right[mid]
		// left-run elements equal to the pivot stay in the first half:
		// they precede the pivot in the stable order
		cut := sort.Search(len(left), func(i int) bool { return srt.cmp(left[i], pivot) > 0 })

		return srt.mergeHalves(ctx,
			left[:cut], right[:mid], dst[:cut+mid],
			left[cut:], right[mid:], dst[cut+mid:])
	}

	mid := len(left) / 2
	pivot := left[mid]
	// right-run elements equal to the pivot go to the second half,
	// after every equal element from the left run
	cut := sort.Search(len(right), func(i int) bool { return srt.cmp(right[i], pivot) >= 0 })

	return srt.mergeHalves(ctx,
		left[:mid], right[:cut], dst[:mid+cut],
		left[mid:], right[cut:], dst[mid+cut:])
}

// mergeHalves runs the two sub-merges of a split merge concurrently.
func (srt *sorter[T]) mergeHalves(ctx context.Context, l1, r1, d1, l2, r2, d2 []T) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srt.merge(gctx, l1, r1, d1) })
	g.Go(func() error { return srt.merge(gctx, l2, r2, d2) })

	return g.Wait()
}

// seqMerge is the sequential two-finger merge; ties prefer the left run.
func (srt *sorter[T]) seqMerge(left, right, dst []T) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if srt.cmp(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	copy(dst[k:], left[i:])
	copy(dst[k+len(left)-i:], right[j:])
}
