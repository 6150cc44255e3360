//go:build !prefetch

package radix

// Default build: prefetch hints compile away entirely.

// PrefetchEnabled reports whether the binary was built with prefetch
// hints compiled in.
const PrefetchEnabled = false

func prefetchWords(s []uint32, i int) {}

func prefetchWordsFar(s []uint32, i int) {}
