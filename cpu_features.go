package radix

import (
	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks instruction set extensions relevant to memory
// throughput. The sort kernel is scalar, so these only feed the
// benchmark banner; they never affect correctness.
type CPUFeatures struct {
	HasSSE42  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool
}

var cpuFeatures CPUFeatures

func init() {
	cpuFeatures = CPUFeatures{
		HasSSE42:  cpu.X86.HasSSE42,
		HasAVX:    cpu.X86.HasAVX,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
		HasNEON:   cpu.ARM64.HasASIMD,
	}
}

// Features returns the detected CPU feature set.
func Features() CPUFeatures { return cpuFeatures }

// FeatureString summarizes the detected features for benchmark banners.
func (f CPUFeatures) FeatureString() string {
	switch {
	case f.HasAVX512:
		return "x86-64 AVX-512"
	case f.HasAVX2:
		return "x86-64 AVX2"
	case f.HasAVX:
		return "x86-64 AVX"
	case f.HasSSE42:
		return "x86-64 SSE4.2"
	case f.HasNEON:
		return "arm64 NEON"
	default:
		return "scalar"
	}
}
