package engines

import (
	"math/bits"

	"github.com/TomTonic/rnd/seed"
)

const (
	pcgMult          = 6364136223846793005
	pcgDefaultSeed   = 0x853c49e6748fea9b
	pcgDefaultStream = 0xda3e39cb94b95bdb
)

// PCG32 is M.E. O'Neill's minimal PCG32 (XSH RR 64/32): a 64-bit LCG with a
// permuted 32-bit output. The increment selects one of 2^63 streams.
// It has a period of 2^64 per stream and a memory footprint of 16 bytes.
//
// See https://www.pcg-random.org/
type PCG32 struct {
	state uint64
	inc   uint64 // always odd
}

// NewPCG32 returns a PCG32. With no arguments the generator starts in its
// default state. The first argument is the initial state, the second (if any)
// selects the stream.
func NewPCG32(seedAndStream ...uint64) PCG32 {
	var p PCG32
	switch len(seedAndStream) {
	case 0:
		p.Reset()
	case 1:
		p.SeedStream(seedAndStream[0], pcgDefaultStream)
	default:
		p.SeedStream(seedAndStream[0], seedAndStream[1])
	}
	return p
}

// PCG32FromState restores a generator from raw state and increment without
// running the seeding routine. inc is forced odd.
func PCG32FromState(state, inc uint64) PCG32 {
	return PCG32{state: state, inc: inc | 1}
}

// Next returns the next 32-bit output.
func (p *PCG32) Next() uint32 {
	old := p.state
	p.state = old*pcgMult + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Seed reseeds the generator on the default stream.
func (p *PCG32) Seed(seed uint32) {
	p.SeedStream(uint64(seed), pcgDefaultStream)
}

// SeedStream reseeds with a full 64-bit initial state and a stream selector.
func (p *PCG32) SeedStream(seed, stream uint64) {
	p.state = 0
	p.inc = stream<<1 | 1
	p.Next()
	p.state += seed
	p.Next()
}

// Seed64 uses the full 64-bit seed as initial state and derives the stream
// from it, so distinct seeds also land on distinct streams.
func (p *PCG32) Seed64(s uint64) {
	p.SeedStream(s, seed.SplitMix64(s))
}

// Reset restores the default state.
func (p *PCG32) Reset() {
	p.SeedStream(pcgDefaultSeed, pcgDefaultStream)
}

// Discard advances the generator by n steps in O(log n) using Brown's
// arbitrary-stride LCG jump ("Random Number Generation with Arbitrary Stride",
// Trans. Am. Nucl. Soc., 1994).
func (p *PCG32) Discard(n uint64) {
	curMult := uint64(pcgMult)
	curPlus := p.inc
	accMult := uint64(1)
	accPlus := uint64(0)
	for n > 0 {
		if n&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		n >>= 1
	}
	p.state = accMult*p.state + accPlus
}

// State returns the raw state and increment, the inverse of PCG32FromState.
func (p *PCG32) State() (state, inc uint64) {
	return p.state, p.inc
}
