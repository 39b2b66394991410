// Package rnd wraps any small bit-generation engine and derives the values
// games and simulations actually need from its raw output: bounded integers,
// floats in canonical ranges, bit fields of any width, ranged values,
// decorrelated sub-streams and simple distributions.
//
// The wrapper is generic over the engine, so there is no interface dispatch
// on the hot path:
//
//	r := rnd.New[uint64, engines.RomuDuoJr]()
//	d6 := rnd.Between(&r, 1, 7)
//	x := r.Float64()
//
// Nothing in this package is cryptographically secure, and a Random must not
// be shared between goroutines without external locking. Use Split to hand a
// goroutine its own stream.
package rnd

import "math/bits"

// Word is the set of unsigned integer types an engine may produce.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Engine is the contract a bit generator must satisfy to be wrapped by
// Random. E is the engine's value type and the methods are implemented on *E.
// Every output value in [0, max(T)] must be reachable and uniformly likely;
// engines with a narrower or offset range are not supported.
type Engine[T Word, E any] interface {
	*E
	// Next draws one word and advances the state.
	Next() T
	// Seed reseeds from a single word.
	Seed(seed T)
	// Reset restores the engine's fixed default state.
	Reset()
	// Discard advances the state by n steps.
	Discard(n uint64)
}

// width returns the bit width of T.
func width[T Word]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// Seeder64 is implemented by engines whose word is narrower than 64 bits but
// whose state can absorb a full 64-bit seed. SeedFrom64 and Split prefer it
// over folding the seed down to the word width.
type Seeder64 interface {
	Seed64(seed uint64)
}
