// Package radix tuning constants
package radix

// Radix parameters. The 32-bit key is consumed in three 11-bit digits,
// so one histogram pass feeds all three bucket-fill passes.
const (
	// Bits consumed per pass
	radixBits = 11

	// Buckets per histogram (2^radixBits)
	histSize = 1 << radixBits

	// Mask for one digit
	histMask = histSize - 1

	// Number of passes over the data
	numPasses = 3
)

// Cache and prefetch parameters
const (
	// Cache line size in bytes (typical for modern CPUs)
	CacheLineSize = 64

	// Prefetch distance in cache lines
	PrefetchDistance = 8

	// float32/uint32 words per cache line
	wordsPerLine = CacheLineSize / 4
)

// Benchmark harness defaults, matching the historical demo configuration.
const (
	// Cap on N * trials per measured size
	DefaultMaxTotal = 16 * 1024 * 1024

	// Cap on trials per measured size
	DefaultMaxTrials = 128

	// Seed for input generation
	DefaultSeed = 1234

	// Generated values are uniform in [ValueMin, ValueMax)
	ValueMin = -16.0
	ValueMax = 16.0

	// Mostly-sorted inputs displace this fraction of elements...
	DisplaceFraction = 0.10

	// ...by offsets within +/- this fraction of N
	DisplaceOffsetFraction = 0.15
)
