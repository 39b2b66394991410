package rnd

import "math"

// Integer is the set of integer types accepted by Between.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Between returns an integer in the half-open range [lo, hi).
//
// The span hi-lo is computed in the unsigned domain, so signed ranges that
// cross zero work. lo >= hi is a precondition violation; without checks lo is
// returned without drawing. The span may be at most 2^ValueBits(); a span of
// exactly 2^ValueBits() uses one raw draw as the offset. Without checks a
// wider span is truncated to the engine word and the result is meaningless.
func Between[I Integer, T Word, E comparable, P Engine[T, E]](r *Random[T, E, P], lo, hi I) I {
	if lo >= hi {
		precondition(false, "Between: empty or inverted range")
		return lo
	}
	span := uint64(hi) - uint64(lo)
	if span-1 == uint64(^T(0)) {
		return lo + I(r.Next())
	}
	precondition(span <= uint64(^T(0)), "Between: range is wider than the engine output")
	return lo + I(r.Below(T(span)))
}

// BetweenFloat returns a value in [lo, hi), computed as lo + (hi-lo)*x with
// x from Normalized. When rounding lands on hi, which happens when the span is
// small next to lo, the largest float below hi is returned instead.
func BetweenFloat[F Float, T Word, E comparable, P Engine[T, E]](r *Random[T, E, P], lo, hi F) F {
	v := lo + (hi-lo)*Normalized[F](r)
	if v >= hi && lo < hi {
		return below(hi)
	}
	return v
}

// below returns the largest value of type F smaller than x.
func below[F Float](x F) F {
	if isFloat32[F]() {
		return F(math.Nextafter32(float32(x), float32(math.Inf(-1))))
	}
	return F(math.Nextafter(float64(x), math.Inf(-1)))
}

// IntBetween returns an int in [lo, hi). See Between.
func (r *Random[T, E, P]) IntBetween(lo, hi int) int {
	return Between(r, lo, hi)
}

// Float64Between returns a float64 in [lo, hi).
func (r *Random[T, E, P]) Float64Between(lo, hi float64) float64 {
	return BetweenFloat(r, lo, hi)
}

// Float32Between returns a float32 in [lo, hi).
func (r *Random[T, E, P]) Float32Between(lo, hi float32) float32 {
	return BetweenFloat(r, lo, hi)
}
