package heap_test

import (
	"math/rand"
	"testing"

	"github.com/veltaran/algokit/heap"
)

// benchCmp avoids subtraction overflow on arbitrary int64 priorities.
func benchCmp(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// BenchmarkPushPop measures a full fill/drain cycle of N pairs.
func BenchmarkPushPop(b *testing.B) {
	const n = 1 << 14
	r := rand.New(rand.NewSource(7))
	ptys := make([]int64, n)
	for i := range ptys {
		ptys[i] = r.Int63()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := heap.New[int64, int](benchCmp, heap.NewMapIndex[int](),
			heap.WithMinCount[int](n))
		for j := 0; j < n; j++ {
			_ = h.Push(ptys[j], j)
		}
		for {
			if _, _, ok := h.Pop(); !ok {
				break
			}
		}
		h.Close()
	}
}

// BenchmarkUpdate measures random decrease/increase-key on a resident set,
// the operation the index exists for.
func BenchmarkUpdate(b *testing.B) {
	const n = 1 << 14
	r := rand.New(rand.NewSource(7))

	idx, _ := heap.NewDenseIndex(n)
	h, _ := heap.New[int64, int](benchCmp, idx, heap.WithMinCount[int](n))
	for j := 0; j < n; j++ {
		_ = h.Push(r.Int63(), j)
	}
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Update(r.Int63(), i%n)
	}
}

// BenchmarkSearch measures the O(1)-expected membership path.
func BenchmarkSearch(b *testing.B) {
	const n = 1 << 14
	h, _ := heap.New[int64, int](benchCmp, heap.NewMapIndex[int](),
		heap.WithMinCount[int](n))
	for j := 0; j < n; j++ {
		_ = h.Push(int64(j*2654435761), j)
	}
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Search(i % n)
	}
}
