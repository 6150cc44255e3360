package radix

import (
	"fmt"
	"testing"
)

// TestPrefetchHintSafety checks that the hint helpers never read past
// the end of short slices, whichever build tag is active.
func TestPrefetchHintSafety(t *testing.T) {
	for _, n := range []int{0, 1, 15, 63, 64, 127, 128, 129} {
		s := make([]uint32, n)
		for i := 0; i < n; i++ {
			prefetchWords(s, i)
			prefetchWordsFar(s, i)
		}
		prefetchWords(s, n)
		prefetchWordsFar(s, n)
	}
}

// TestSortAcrossCacheLevels runs the sort at sizes chosen to stress
// different cache levels; output must be identical with or without
// prefetch hints compiled in.
func TestSortAcrossCacheLevels(t *testing.T) {
	sizes := []int{
		1024,        // 4KB - fits in L1
		8 * 1024,    // 32KB - spans L1/L2
		64 * 1024,   // 256KB - spans L2/L3
		1024 * 1024, // 4MB - exceeds L3 on most CPUs
	}
	for _, n := range sizes {
		t.Run(fmt.Sprintf("Size_%d", n), func(t *testing.T) {
			in := GenerateUniform(n, uint64(n))
			out := make([]float32, n)
			Sort11(in, out)
			if !IsSorted(out) {
				t.Errorf("output not sorted at N=%d (prefetch=%v)", n, PrefetchEnabled)
			}
		})
	}
}
