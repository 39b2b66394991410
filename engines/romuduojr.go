package engines

import "math/bits"

const romuDefaultSeed = 0xFEEDFACEFEEDFACE

// RomuDuoJr is Mark Overton's RomuDuoJr with the seeding from Rhet Butler's
// xromu2jr. It is one of the fastest generators here, at the price of a
// smaller guaranteed period. See https://romu-random.org/
type RomuDuoJr struct {
	x, y uint64
}

// NewRomuDuoJr returns a RomuDuoJr seeded with seed[0], or with the default
// seed if none is given.
func NewRomuDuoJr(seed ...uint64) RomuDuoJr {
	var r RomuDuoJr
	if len(seed) == 0 {
		r.Reset()
	} else {
		r.Seed(seed[0])
	}
	return r
}

func romuMix(y uint64) uint64 {
	return y ^ (y >> 23) ^ (y >> 51)
}

func (r *RomuDuoJr) Next() uint64 {
	old := r.x
	r.x = r.y * 0xD3833E804F4C574B
	r.y = bits.RotateLeft64(r.y-old, 27)
	return old
}

// Seed reseeds the generator. Zero is a valid seed.
func (r *RomuDuoJr) Seed(seed uint64) {
	var nz uint64
	if seed == 0 {
		nz = 1
	}
	r.x = 0x9E6C63D0676A9A99
	r.y = nz - seed
	r.y *= r.x
	r.y = romuMix(r.y)
	r.y *= r.x
	r.x *= bits.RotateLeft64(r.y, 27)
	r.y = romuMix(r.y)
}

func (r *RomuDuoJr) Reset() {
	r.Seed(romuDefaultSeed)
}

func (r *RomuDuoJr) Discard(n uint64) {
	for ; n > 0; n-- {
		r.Next()
	}
}
