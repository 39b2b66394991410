// Package seed provides seed values for the engines in this module: strong
// 64-bit mixers, seeds derived from text or bytes, and runtime entropy sources
// (clock, CPU time, process identity, operating system entropy).
//
// Every function returns a plain integer. The wrapper in the root package has
// no opinion on where a seed came from; use a fixed constant for reproducible
// streams and one of the From* sources otherwise.
package seed

import "math/bits"

const (
	golden = 0x9E3779B97F4A7C15

	// DefaultDomain is the xNASAM domain used for seeding ("SEED-01").
	DefaultDomain uint64 = 0x534545442D3031

	// mixDomain separates Absorb from plain seeding ("MIX-01").
	mixDomain uint64 = 0x4D49582D3031
)

// SplitMix64 is Vigna's splitmix64 finalizer including the golden-ratio
// increment. It is the classic way to expand one seed into several state words.
func SplitMix64(x uint64) uint64 {
	z := x + golden
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Moremur is Pelle Evensen's moremur mixer with a golden-ratio increment up
// front, so that zero is not a fixed point and sequential inputs decorrelate.
func Moremur(x uint64) uint64 {
	x += golden
	x ^= x >> 27
	x *= 0x3C79AC492BA7B653
	x ^= x >> 33
	x *= 0x1C69B3F74AC4AE35
	x ^= x >> 27
	return x
}

// Xnasam is Pelle Evensen's xNASAM mixer. domain is a domain-separation key:
// two derivations using different domains produce unrelated outputs for the
// same input. domain must be non-zero.
//
// See https://mostlymangling.blogspot.com/2020/01/nasam-not-another-strange-acronym-mixer.html
func Xnasam(x, domain uint64) uint64 {
	x ^= domain
	x ^= bits.RotateLeft64(x, -25) ^ bits.RotateLeft64(x, -47)
	x *= 0x9E6C63D0676A9A99
	x ^= (x >> 23) ^ (x >> 51)
	x *= 0x9E6D62D06F6A9A9B
	x ^= (x >> 23) ^ (x >> 51)
	return x
}

// Absorb folds v into a running seed accumulator and re-mixes, so that small
// or repeated inputs still change the whole result.
func Absorb(state, v uint64) uint64 {
	state ^= v
	state += golden
	return Xnasam(state, mixDomain)
}

// Fold XOR-folds a 64-bit seed down to the width of T, so that the high bits
// still influence narrow engines instead of being truncated away.
func Fold[T ~uint8 | ~uint16 | ~uint32 | ~uint64](s uint64) T {
	w := bits.OnesCount64(uint64(^T(0)))
	for width := 64; width > w; width /= 2 {
		s ^= s >> (width / 2)
	}
	return T(s)
}

// To32 folds a 64-bit seed for 32-bit engines.
func To32(s uint64) uint32 {
	return Fold[uint32](s)
}
