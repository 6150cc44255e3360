package radix

import (
	"fmt"
	"slices"
	"testing"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 18, 1 << 22}

func BenchmarkRadixSort11(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			pristine := GenerateUniform(n, DefaultSeed)
			in := make([]float32, n)
			out := make([]float32, n)

			b.SetBytes(int64(n * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(in, pristine)
				RadixSort11(in, out, uint32(n))
			}
		})
	}
}

func BenchmarkReferenceSort(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			pristine := GenerateUniform(n, DefaultSeed)
			in := make([]float32, n)

			b.SetBytes(int64(n * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(in, pristine)
				slices.Sort(in)
			}
		})
	}
}

func BenchmarkRadixSort11MostlySorted(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			pristine := GenerateMostlySorted(n, DefaultSeed)
			in := make([]float32, n)
			out := make([]float32, n)

			b.SetBytes(int64(n * 4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(in, pristine)
				RadixSort11(in, out, uint32(n))
			}
		})
	}
}
