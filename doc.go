// Copyright ©2025 The FloatKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package radix implements a three-pass, 11-bit-radix,
// least-significant-digit sort for float32 slices, together with the
// input generators and timing harness used to benchmark it against the
// standard library's comparison sort.
//
// The kernel replaces float comparisons with unsigned integer
// comparisons via an order-preserving bit transform (FloatFlip), then
// sorts the 32-bit keys in three stable counting passes of 11 bits
// each, ping-ponging between the caller's input and output buffers:
//
//	in := []float32{3, -1, 2}
//	out := make([]float32, len(in))
//	radix.Sort11(in, out) // out == [-1 2 3], in is scratch afterwards
//
// Sorting is O(N) with a fixed 3x2048-entry histogram as the only
// auxiliary state, performs no allocation, and is safe to run
// concurrently on independent buffer pairs. NaN values are moved
// without crashing but their position in the output is unspecified.
package radix
