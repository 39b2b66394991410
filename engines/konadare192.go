package engines

import "math/bits"

const (
	konadareInc         = 0xBB67AE8584CAA73B
	konadareDefaultSeed = 1
)

// Konadare192 is Pelle Evensen's konadare192px++ with 192 bits of state.
// See https://github.com/pellevensen/PReenactiNG
type Konadare192 struct {
	a, b, c uint64
}

// NewKonadare192 returns a Konadare192 seeded with seed[0], or with the
// default seed if none is given.
func NewKonadare192(seed ...uint64) Konadare192 {
	var k Konadare192
	if len(seed) == 0 {
		k.Reset()
	} else {
		k.Seed(seed[0])
	}
	return k
}

func konadareMix(a, b uint64) uint64 {
	c, x := b, a
	for i := range uint64(5) {
		x ^= bits.RotateLeft64(x, -25) ^ bits.RotateLeft64(x, -49)
		c += konadareInc + (c << 15) + (c << 7) + i
		c ^= (c >> 47) ^ (c >> 23)
		x += c
		x ^= (x >> 11) ^ (x >> 3)
	}
	return x
}

func (k *Konadare192) Next() uint64 {
	out := k.b ^ k.c
	a0 := k.a ^ (k.a >> 32)
	k.a += konadareInc
	k.b = bits.RotateLeft64(k.b+a0, -11)
	k.c = bits.RotateLeft64(k.c+k.b, 8)
	return out
}

// Seed reseeds the generator with two warm-up mixing rounds. The all-zero
// state is never produced.
func (k *Konadare192) Seed(seed uint64) {
	k.a, k.b, k.c = seed, seed+1, seed+2
	for range 2 {
		k.a, k.b, k.c = konadareMix(k.a, k.c), konadareMix(k.b, k.a), konadareMix(k.c, k.b)
	}
	if k.a|k.b|k.c == 0 {
		k.a = 0x3C6EF372FE94F82B
	}
}

func (k *Konadare192) Reset() {
	k.Seed(konadareDefaultSeed)
}

func (k *Konadare192) Discard(n uint64) {
	for ; n > 0; n-- {
		k.Next()
	}
}
