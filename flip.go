package radix

// FloatFlip maps a float32 bit pattern to an unsigned key whose integer
// ordering matches the float ordering of the original value.
//
// IEEE-754 singles are sign-magnitude: negative values get larger raw
// patterns as they get more negative. Complementing every bit of a
// negative pattern reverses that, and setting the sign bit of a
// non-negative pattern pushes it above all negatives. The mask is built
// branch-free: all-ones when the sign bit is set, just the sign bit
// otherwise.
//
// NaN patterns pass through like any other bits; they land somewhere
// among the largest keys but have no defined position.
func FloatFlip(f uint32) uint32 {
	mask := uint32(-int32(f>>31)) | 0x80000000
	return f ^ mask
}

// FloatUnflip inverts FloatFlip. Bit 31 of a flipped key is set exactly
// when the original value was non-negative, so the two mask cases swap
// roles: clear bit 31 means the original was negative and every bit
// flips back.
//
// FloatUnflip(FloatFlip(x)) == x for every 32-bit pattern x.
func FloatUnflip(f uint32) uint32 {
	mask := ((f >> 31) - 1) | 0x80000000
	return f ^ mask
}

// The three 11-bit digit groups of a flipped key, least significant
// first. These ranges must stay exactly [0,11), [11,22), [22,32):
// a misaligned slice corrupts bucket assignment without crashing.

func digit0(k uint32) uint32 { return k & histMask }

func digit1(k uint32) uint32 { return (k >> radixBits) & histMask }

func digit2(k uint32) uint32 { return k >> (2 * radixBits) }
