package engines

const xorShiftDefaultSeed = 0x1234567890ABCDEF

// XorShift64Star is a xorshift* generator
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// It has a period of 2^64-1, i.e. every non-zero state occurs exactly once
// per period and always has the same successor and predecessor.
// Next has a constant runtime and a high probability to be inlined by the compiler.
// The generator has a memory footprint of 8 bytes.
// The state must not be zero; Seed replaces a zero seed with a fixed constant.
type XorShift64Star struct {
	state uint64
}

// NewXorShift64Star returns a XorShift64Star seeded with seed[0], or with the
// default seed if none is given.
func NewXorShift64Star(seed ...uint64) XorShift64Star {
	var x XorShift64Star
	if len(seed) == 0 {
		x.Reset()
	} else {
		x.Seed(seed[0])
	}
	return x
}

func (x *XorShift64Star) Next() uint64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return s * 0x2545F4914F6CDD1D
}

// Seed sets the state to seed, or to a fixed non-zero constant if seed is zero.
func (x *XorShift64Star) Seed(seed uint64) {
	if seed == 0 {
		seed = xorShiftDefaultSeed
	}
	x.state = seed
}

func (x *XorShift64Star) Reset() {
	x.state = xorShiftDefaultSeed
}

func (x *XorShift64Star) Discard(n uint64) {
	for ; n > 0; n-- {
		x.Next()
	}
}
