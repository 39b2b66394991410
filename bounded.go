package rnd

import "math/bits"

// Below returns a value in [0, bound) using Lemire's multiply-shift reduction
// of exactly one draw. There is no rejection loop, so the result carries a
// bias of at most bound/2^ValueBits(); it is exact when bound is a power of
// two. Below(1) still consumes a draw.
//
// bound == 0 is a precondition violation; without checks it returns 0 after
// consuming one draw.
func (r *Random[T, E, P]) Below(bound T) T {
	precondition(bound > 0, "Below: bound must be positive")
	x := r.Next()
	w := width[T]()
	if w <= 32 {
		return T((uint64(x) * uint64(bound)) >> w)
	}
	return T(MulShift(uint64(x), uint64(bound), w))
}

// Bound is a precomputed upper bound for BelowFixed. Computing it once (for
// example into a package-level var) moves the power-of-two analysis out of
// the sampling path.
type Bound[T Word] struct {
	n     T
	shift uint
	pow2  bool
}

// FixedBound prepares n for use with BelowFixed. n == 0 is a precondition
// violation; the resulting Bound then behaves like Below(0).
func FixedBound[T Word](n T) Bound[T] {
	precondition(n > 0, "FixedBound: bound must be positive")
	b := Bound[T]{n: n}
	if n != 0 && n&(n-1) == 0 {
		b.pow2 = true
		b.shift = uint(bits.TrailingZeros64(uint64(n)))
	}
	return b
}

// N returns the bound value.
func (b Bound[T]) N() T {
	return b.n
}

// PowerOfTwo reports whether the fast bit-extraction path applies.
func (b Bound[T]) PowerOfTwo() bool {
	return b.pow2
}

// BelowFixed returns a value in [0, b.N()). For power-of-two bounds it takes
// the top log2(n) bits of one draw, which is the same value Below would
// compute; other bounds delegate to Below. Exactly one draw is consumed in
// every case, including n == 1.
func (r *Random[T, E, P]) BelowFixed(b Bound[T]) T {
	if !b.pow2 {
		return r.Below(b.n)
	}
	if b.shift == 0 {
		r.Next()
		return 0
	}
	return T(r.Bits(b.shift))
}
