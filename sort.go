package radix

import (
	"fmt"
	"unsafe"
)

// u32view reinterprets a float32 slice as uint32 words. It is a view,
// not a conversion: no bits change and both slices address the same
// memory. This is the only place the package aliases float storage;
// callers must not let the view outlive the backing slice.
func u32view(f []float32) []uint32 {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&f[0])), len(f))
}

// Sort11 sorts input into output using a three-pass least-significant-
// digit radix sort over 11-bit digits of the order-flipped key.
//
// Preconditions (unchecked): len(input) == len(output) and the two
// slices do not overlap. input is consumed as scratch during the
// ping-pong passes; its contents are unspecified after the call.
// NaN values do not crash the sort but their final position is
// unspecified. Use Sort for a validating wrapper.
//
// The kernel does four linear scans and no comparisons:
//
//  1. one histogram pass over input, counting all three digit groups
//     of the flipped key into three 2048-bucket histograms;
//  2. an exclusive prefix sum minus one over each histogram, so each
//     bucket holds the offset just before its first slot and a
//     pre-increment both claims the slot and advances the bucket;
//  3. three bucket-fill passes alternating input->output->input->output.
//     The first pass applies FloatFlip while moving, the last applies
//     FloatUnflip, so true float values land sorted in output.
//
// Auxiliary space is the fixed 3x2048 histogram on the stack; the
// kernel is stateless between calls and safe to run concurrently on
// independent buffer pairs.
func Sort11(input, output []float32) {
	n := len(input)
	if n == 0 {
		return
	}

	array := u32view(input)
	sorted := u32view(output)

	var hist [numPasses * histSize]uint32
	b0 := hist[0*histSize : 1*histSize]
	b1 := hist[1*histSize : 2*histSize]
	b2 := hist[2*histSize : 3*histSize]

	// Pass 1: one scan builds all three histograms. The source is read
	// but not mutated; flipping happens during the first move below.
	for i := 0; i < n; i++ {
		prefetchWords(array, i)
		fi := FloatFlip(array[i])
		b0[digit0(fi)]++
		b1[digit1(fi)]++
		b2[digit2(fi)]++
	}

	// Pass 2: exclusive prefix sums, each bucket offset by -1 so the
	// fill passes can pre-increment. The uint32 wraparound at bucket 0
	// is intentional: ++ brings it back to offset 0.
	var sum0, sum1, sum2 uint32
	for i := 0; i < histSize; i++ {
		t := b0[i] + sum0
		b0[i] = sum0 - 1
		sum0 = t

		t = b1[i] + sum1
		b1[i] = sum1 - 1
		sum1 = t

		t = b2[i] + sum2
		b2[i] = sum2 - 1
		sum2 = t
	}

	// Digit 0: flip while moving, input -> output.
	for i := 0; i < n; i++ {
		prefetchWordsFar(array, i)
		fi := FloatFlip(array[i])
		pos := digit0(fi)
		b0[pos]++
		sorted[b0[pos]] = fi
	}

	// Digit 1: straight copy, output -> input.
	for i := 0; i < n; i++ {
		prefetchWordsFar(sorted, i)
		si := sorted[i]
		pos := digit1(si)
		b1[pos]++
		array[b1[pos]] = si
	}

	// Digit 2: unflip while moving, input -> output.
	for i := 0; i < n; i++ {
		prefetchWordsFar(array, i)
		ai := array[i]
		pos := digit2(ai)
		b2[pos]++
		sorted[b2[pos]] = FloatUnflip(ai)
	}
}

// RadixSort11 sorts the first n elements of farray into sorted. It is
// the historical calling convention for Sort11 and shares its
// preconditions: both slices must hold at least n elements and must
// not overlap, and farray is consumed as scratch.
func RadixSort11(farray, sorted []float32, n uint32) {
	Sort11(farray[:n], sorted[:n])
}

// Sort validates its arguments and then runs Sort11. Unlike the raw
// kernel it reports length mismatches and buffer aliasing as errors
// instead of leaving them undefined. Partial overlap of distinct
// backing arrays is not detectable and remains a caller contract.
func Sort(input, output []float32) error {
	if len(input) != len(output) {
		return NewInvalidArgError("Sort",
			fmt.Sprintf("length mismatch: input %d, output %d", len(input), len(output)), nil)
	}
	if len(input) > 0 && &input[0] == &output[0] {
		return NewInvalidArgError("Sort", "input and output share storage", nil)
	}
	Sort11(input, output)
	return nil
}
