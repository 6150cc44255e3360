//go:build prefetch

package radix

// Prefetch hints for the sort's streaming passes, enabled with the
// "prefetch" build tag. Go has no portable prefetch intrinsic, so these
// touch memory ahead of the scan to engage the hardware prefetcher.
// Presence or absence never changes the sorted output, only throughput.

// PrefetchEnabled reports whether the binary was built with prefetch
// hints compiled in.
const PrefetchEnabled = true

// Hint distances in words, one for the histogram scan and a longer one
// for the bucket-fill passes, which also stream writes.
const (
	prefetchNear = (PrefetchDistance / 2) * wordsPerLine
	prefetchFar  = PrefetchDistance * wordsPerLine
)

func prefetchWords(s []uint32, i int) {
	if j := i + prefetchNear; j < len(s) {
		_ = s[j]
	}
}

func prefetchWordsFar(s []uint32, i int) {
	if j := i + prefetchFar; j < len(s) {
		_ = s[j]
	}
}
