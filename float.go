package rnd

import (
	"math"
	"unsafe"
)

const (
	float32MantissaBits = 23
	float64MantissaBits = 52
)

// Float32 returns a uniformly distributed float32 in [0.0, 1.0).
// This function will never return -0.0.
// This function will never return 1.0.
// This function will never return NaN or Inf.
// It uses 23 random bits for the mantissa, the most a float32 in [1, 2) can
// hold without breaking uniformity. Narrow engines gather them from several draws.
// See: https://en.wikipedia.org/wiki/Single-precision_floating-point_format
func (r *Random[T, E, P]) Float32() float32 {
	u := uint32(r.Bits(float32MantissaBits))

	const sign uint32 = 0
	const exp uint32 = 127
	bits := (sign << 31) | (exp << 23) | u
	return math.Float32frombits(bits) - 1.0
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// This function will never return -0.0.
// This function will never return 1.0.
// This function will never return NaN or Inf.
// It uses 52 random bits for the mantissa.
// See: https://en.wikipedia.org/wiki/Double-precision_floating-point_format
func (r *Random[T, E, P]) Float64() float64 {
	u := r.Bits(float64MantissaBits)

	const sign uint64 = 0
	const exp uint64 = 1023
	bits := (sign << 63) | (exp << 52) | u
	return math.Float64frombits(bits) - 1.0
}

// SignedFloat32 returns a float32 in [-1.0, 1.0).
func (r *Random[T, E, P]) SignedFloat32() float32 {
	return 2*r.Float32() - 1
}

// SignedFloat64 returns a float64 in [-1.0, 1.0).
func (r *Random[T, E, P]) SignedFloat64() float64 {
	return 2*r.Float64() - 1
}

// Float is the set of floating-point types the generic helpers produce.
type Float interface {
	~float32 | ~float64
}

func isFloat32[F Float]() bool {
	var zero F
	return unsafe.Sizeof(zero) == 4
}

// Normalized returns a value of type F in [0, 1), using Float32 or Float64
// depending on the precision of F.
func Normalized[F Float, T Word, E comparable, P Engine[T, E]](r *Random[T, E, P]) F {
	if isFloat32[F]() {
		return F(r.Float32())
	}
	return F(r.Float64())
}

// SignedNormalized returns a value of type F in [-1, 1).
func SignedNormalized[F Float, T Word, E comparable, P Engine[T, E]](r *Random[T, E, P]) F {
	if isFloat32[F]() {
		return F(r.SignedFloat32())
	}
	return F(r.SignedFloat64())
}
