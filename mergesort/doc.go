// Package mergesort provides a stable, parallel merge sort for slices of
// any type, ordered by a caller-supplied comparison function.
//
// What
//
//   - Sort(s, cmp, opts...) sorts s in place, stably.
//   - Two independent parallelism knobs:
//   - WithSortCutoff(n): segments of at most n elements are sorted
//     sequentially; larger segments split into two goroutines.
//   - WithMergeCutoff(n): run pairs of at most n combined elements are
//     merged sequentially; larger merges are bisected around a pivot
//     and the halves merged concurrently.
//   - WithContext(ctx): cancellation, checked at every recursive split.
//
// Why
//
//   - sort.SliceStable is single-threaded; on multi-core machines large
//     sorts leave most of the machine idle. Splitting both the sort and
//     the merge phases keeps all cores busy down to the cutoffs.
//   - The two cutoffs are separate because the phases have different
//     per-element costs; tuning them independently is the whole point of
//     the parallel formulation.
//
// Stability
//
//	Elements comparing equal keep their input order. The parallel merge
//	bisects around a pivot so that equal elements from the left run always
//	land ahead of equal elements from the right run.
//
// Complexity (n = len(s), p = cores)
//
//   - Work:   O(n log n)
//   - Span:   O(n log n / p) expected with both phases parallel
//   - Memory: O(n) auxiliary
//
// Usage
//
//	err := mergesort.Sort(data,
//	    func(a, b record) int { return int(a.key - b.key) },
//	    mergesort.WithSortCutoff(1<<12),
//	)
//
// Errors
//
//   - ErrNilCompare for a nil comparison function.
//   - ErrOptionViolation for non-positive cutoffs.
//   - The context's error when cancelled mid-sort (slice contents are then
//     an unspecified permutation of the input).
package mergesort
