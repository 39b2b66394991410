package engines

import (
	"math/bits"

	"github.com/TomTonic/rnd/seed"
)

const xoshiroDefaultSeed = 0xFEEDFACECAFEBEEF

var xoshiroJump = [4]uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}

// Xoshiro256SS is xoshiro256** 1.0 by David Blackman and Sebastiano Vigna,
// seeded through splitmix64. See https://prng.di.unimi.it/
type Xoshiro256SS struct {
	s [4]uint64
}

// NewXoshiro256SS returns a Xoshiro256SS seeded with seed[0], or with the
// default seed if none is given.
func NewXoshiro256SS(seed ...uint64) Xoshiro256SS {
	var x Xoshiro256SS
	if len(seed) == 0 {
		x.Reset()
	} else {
		x.Seed(seed[0])
	}
	return x
}

// Xoshiro256SSFromState restores a generator from its four state words without
// running the seeding routine. The state must not be all zero.
func Xoshiro256SSFromState(state [4]uint64) Xoshiro256SS {
	return Xoshiro256SS{s: state}
}

func (x *Xoshiro256SS) Next() uint64 {
	s := &x.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)
	return result
}

// Seed expands v into four state words with a chain of splitmix64 calls.
func (x *Xoshiro256SS) Seed(v uint64) {
	x.s[0] = seed.SplitMix64(v)
	x.s[1] = seed.SplitMix64(x.s[0] + 0x9E3779B97F4A7C15)
	x.s[2] = seed.SplitMix64(x.s[1] + 0x7F4A7C15F39CCCD1)
	x.s[3] = seed.SplitMix64(x.s[2] + 0x3549B5A7B97C9A31)
}

func (x *Xoshiro256SS) Reset() {
	x.Seed(xoshiroDefaultSeed)
}

func (x *Xoshiro256SS) Discard(n uint64) {
	for ; n > 0; n-- {
		x.Next()
	}
}

// Jump advances the generator by 2^128 steps. Calling Jump on copies of one
// generator yields non-overlapping sub-sequences for parallel work.
func (x *Xoshiro256SS) Jump() {
	var t [4]uint64
	for _, word := range xoshiroJump {
		for b := range 64 {
			if word&(1<<b) != 0 {
				t[0] ^= x.s[0]
				t[1] ^= x.s[1]
				t[2] ^= x.s[2]
				t[3] ^= x.s[3]
			}
			x.Next()
		}
	}
	x.s = t
}

// State returns the four state words.
func (x *Xoshiro256SS) State() [4]uint64 {
	return x.s
}
