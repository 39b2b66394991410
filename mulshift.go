package rnd

import "math/bits"

// MulShift returns floor(x*bound / 2^width) computed over the full 128-bit
// product, for width in [1, 64]. With x uniform over [0, 2^width) the result
// is a nearly uniform value in [0, bound), Lemire's "fastrange" reduction.
// See https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
//
// Widths outside [1, 64] are a precondition violation; without checks a
// width of 0 yields the low product word and widths above 64 the high word.
func MulShift(x, bound uint64, width uint) uint64 {
	precondition(width >= 1 && width <= 64, "MulShift: width must be in [1, 64]")
	if portableMul {
		return mulShiftPortable(x, bound, width)
	}
	hi, lo := bits.Mul64(x, bound)
	return shr128(hi, lo, width)
}

// mulShiftPortable is MulShift built from 32-bit limbs only.
func mulShiftPortable(x, bound uint64, width uint) uint64 {
	hi, lo := mul64Parts(x, bound)
	return shr128(hi, lo, width)
}

// mul64Parts returns the 128-bit product of a and b as (hi, lo), using four
// 32x32->64 partial products and explicit carries.
func mul64Parts(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	ll := aLo * bLo
	lh := aLo * bHi
	hl := aHi * bLo
	hh := aHi * bHi

	// middle column: high half of ll plus the low halves of the cross terms
	mid := ll>>32 + lh&mask32 + hl&mask32

	lo = mid<<32 | ll&mask32
	hi = hh + lh>>32 + hl>>32 + mid>>32
	return hi, lo
}

// shr128 shifts the 128-bit value (hi, lo) right by width and returns the low
// 64 bits of the result.
func shr128(hi, lo uint64, width uint) uint64 {
	switch {
	case width >= 64:
		return hi
	case width == 0:
		return lo
	default:
		return lo>>width | hi<<(64-width)
	}
}
