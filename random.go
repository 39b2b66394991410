package rnd

import "github.com/TomTonic/rnd/seed"

// Random wraps exactly one engine value and nothing else. Copying a Random
// duplicates the stream, and two Randoms compare equal with == exactly when
// their engine states are equal.
//
// Use New, NewSeeded or FromEngine to create one; the zero value holds a
// zero engine state, which some engines do not support.
type Random[T Word, E comparable, P Engine[T, E]] struct {
	e E
}

// New returns a Random whose engine is in its default state.
func New[T Word, E comparable, P Engine[T, E]]() Random[T, E, P] {
	var r Random[T, E, P]
	P(&r.e).Reset()
	return r
}

// NewSeeded returns a Random whose engine has been seeded with s.
func NewSeeded[T Word, E comparable, P Engine[T, E]](s T) Random[T, E, P] {
	var r Random[T, E, P]
	P(&r.e).Seed(s)
	return r
}

// FromEngine adopts an already configured engine value, e.g. one created
// with a stream selector or restored from saved state.
func FromEngine[T Word, E comparable, P Engine[T, E]](e E) Random[T, E, P] {
	return Random[T, E, P]{e: e}
}

// Next returns one raw draw from the engine.
func (r *Random[T, E, P]) Next() T {
	return P(&r.e).Next()
}

// Seed reseeds the engine.
func (r *Random[T, E, P]) Seed(s T) {
	P(&r.e).Seed(s)
}

// Reset restores the engine's default state.
func (r *Random[T, E, P]) Reset() {
	P(&r.e).Reset()
}

// Discard advances the engine by n draws.
func (r *Random[T, E, P]) Discard(n uint64) {
	P(&r.e).Discard(n)
}

// Engine returns a copy of the engine state.
func (r *Random[T, E, P]) Engine() E {
	return r.e
}

// Min returns the smallest raw draw, always 0.
func (r *Random[T, E, P]) Min() T {
	return 0
}

// Max returns the largest raw draw, 2^ValueBits()-1.
func (r *Random[T, E, P]) Max() T {
	return ^T(0)
}

// ValueBits returns the number of random bits in one raw draw.
func (r *Random[T, E, P]) ValueBits() uint {
	return width[T]()
}

// SeedFrom64 reseeds the engine from a 64-bit seed. Engines implementing
// Seeder64 receive all 64 bits; others get the seed XOR-folded to their word
// width with seed.Fold.
func (r *Random[T, E, P]) SeedFrom64(s uint64) {
	if s64, ok := any(P(&r.e)).(Seeder64); ok {
		s64.Seed64(s)
		return
	}
	P(&r.e).Seed(seed.Fold[T](s))
}

// NewSeededFrom64 returns a Random seeded with SeedFrom64.
func NewSeededFrom64[T Word, E comparable, P Engine[T, E]](s uint64) Random[T, E, P] {
	var r Random[T, E, P]
	r.SeedFrom64(s)
	return r
}
