package radix

import (
	"math"
	"slices"

	"golang.org/x/exp/rand"
)

// Input generators for the benchmark harness and tests. All generators
// are deterministic in their seed so runs are reproducible.

// GenerateUniform returns n float32 values drawn uniformly from
// [ValueMin, ValueMax).
func GenerateUniform(n int, seed uint64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float32, n)
	fillUniform(v, rng)
	return v
}

// GenerateMostlySorted returns n values that start fully sorted and then
// have a fraction of elements displaced: DisplaceFraction of the
// positions are swapped with a partner at most DisplaceOffsetFraction*n
// away. This models nearly-ordered data, the friendliest case for
// comparison sorts.
func GenerateMostlySorted(n int, seed uint64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float32, n)
	fillUniform(v, rng)
	slices.Sort(v)
	if n < 2 {
		return v
	}

	offsetRange := int(float64(n) * DisplaceOffsetFraction)
	displace := int(float64(n) * DisplaceFraction)
	for j := 0; j < displace; j++ {
		i := rng.Intn(n)
		off := rng.Intn(2*offsetRange+1) - offsetRange
		k := min(max(i+off, 0), n-1)
		v[i], v[k] = v[k], v[i]
	}
	return v
}

// GenerateTrials returns trials independent inputs of length n. When
// mostlySorted is set each trial uses the nearly-ordered distribution.
// Trials get distinct derived seeds so they are independent but still
// reproducible from the one seed.
func GenerateTrials(trials, n int, seed uint64, mostlySorted bool) [][]float32 {
	out := make([][]float32, trials)
	for t := range out {
		s := seed + uint64(t)*0x9E3779B97F4A7C15
		if mostlySorted {
			out[t] = GenerateMostlySorted(n, s)
		} else {
			out[t] = GenerateUniform(n, s)
		}
	}
	return out
}

// GenerateEdgeCases returns values that stress the bit-flip paths:
// signed zeros, denormals, extremes, and infinities. NaN is deliberately
// absent; its ordering is unspecified and it gets its own tests.
func GenerateEdgeCases() []float32 {
	return []float32{
		0.0,
		float32(math.Copysign(0, -1)),
		1.0,
		-1.0,
		math.SmallestNonzeroFloat32,
		-math.SmallestNonzeroFloat32,
		math.MaxFloat32,
		-math.MaxFloat32,
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		1e-38, // near denormal
		-1e-38,
		1e38,
		-1e38,
	}
}

func fillUniform(v []float32, rng *rand.Rand) {
	const scale = ValueMax - ValueMin
	for i := range v {
		v[i] = ValueMin + float32(rng.Float64())*scale
	}
}
