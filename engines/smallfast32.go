package engines

import "math/bits"

const smallFast32DefaultSeed = 0xBADC0FFE

// SmallFast32 is Bob Jenkins' small fast generator (JSF), 32-bit two-rotate
// variant. See https://burtleburtle.net/bob/rand/smallprng.html
type SmallFast32 struct {
	a, b, c, d uint32
}

// NewSmallFast32 returns a SmallFast32 seeded with seed[0], or with the
// default seed if none is given.
func NewSmallFast32(seed ...uint32) SmallFast32 {
	var s SmallFast32
	if len(seed) == 0 {
		s.Reset()
	} else {
		s.Seed(seed[0])
	}
	return s
}

func (s *SmallFast32) Next() uint32 {
	e := s.a - bits.RotateLeft32(s.b, 27)
	s.a = s.b ^ bits.RotateLeft32(s.c, 17)
	s.b = s.c + s.d
	s.c = s.d + e
	s.d = e + s.a
	return s.d
}

// Seed reseeds the generator and runs 20 warm-up rounds.
func (s *SmallFast32) Seed(seed uint32) {
	s.a, s.b, s.c, s.d = 0xf1ea5eed, seed, seed, seed
	s.Discard(20)
}

// Seed64 spreads a 64-bit seed over the b, c and d words. A seed whose two
// halves are equal gives the same state as Seed with that half.
func (s *SmallFast32) Seed64(seed uint64) {
	lo, hi := uint32(seed), uint32(seed>>32)
	s.a, s.b, s.c, s.d = 0xf1ea5eed, lo, hi, lo
	s.Discard(20)
}

func (s *SmallFast32) Reset() {
	s.Seed(smallFast32DefaultSeed)
}

func (s *SmallFast32) Discard(n uint64) {
	for ; n > 0; n-- {
		s.Next()
	}
}
