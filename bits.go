package rnd

// mask returns a mask of the n low bits; n >= 64 yields all ones.
func mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// Bits returns n random bits in the low bits of the result, 1 <= n <= 64.
//
// The high bits of each draw are used, since the low bits of several engines
// are the weakest. If n exceeds the engine width, successive draws are packed
// high-to-low until n bits are filled. n outside [1, 64] is a precondition
// violation; without checks n == 0 returns 0 without drawing and n > 64 is
// treated as 64.
func (r *Random[T, E, P]) Bits(n uint) uint64 {
	precondition(n >= 1 && n <= 64, "Bits: bit count must be in [1, 64]")
	if n == 0 {
		return 0
	}
	if n > 64 {
		n = 64
	}
	w := width[T]()
	if n <= w {
		return uint64(r.Next()) >> (w - n)
	}
	var acc uint64
	for filled := uint(0); filled < n; {
		take := min(w, n-filled)
		acc |= (uint64(r.Next()) >> (w - take)) << (n - filled - take)
		filled += take
	}
	return acc & mask(n)
}

// Uint8 returns 8 random bits.
func (r *Random[T, E, P]) Uint8() uint8 {
	return uint8(r.Bits(8))
}

// Uint16 returns 16 random bits.
func (r *Random[T, E, P]) Uint16() uint16 {
	return uint16(r.Bits(16))
}

// Uint32 returns 32 random bits.
func (r *Random[T, E, P]) Uint32() uint32 {
	return uint32(r.Bits(32))
}

// Uint64 returns 64 random bits. Together with this method a *Random
// satisfies math/rand/v2.Source and can drive rand.New.
func (r *Random[T, E, P]) Uint64() uint64 {
	return r.Bits(64)
}
