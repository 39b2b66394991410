package rnd

import "iter"

// CoinFlip returns true or false with equal probability, using the top bit of
// one draw.
func (r *Random[T, E, P]) CoinFlip() bool {
	return r.Bits(1) == 1
}

// Chance returns true with probability p. p <= 0 never succeeds and p >= 1
// always does; one draw is consumed either way.
func (r *Random[T, E, P]) Chance(p float64) bool {
	return r.Float64() < p
}

// Index returns a uniform index in [0, n). n <= 0 is a precondition
// violation; without checks 0 is returned without drawing. n must also not
// exceed 2^ValueBits(), so narrow engines only index short collections: at
// most 256 elements for an 8-bit engine and 65536 for a 16-bit one. See
// Between for the behavior without checks.
func (r *Random[T, E, P]) Index(n int) int {
	if n <= 0 {
		precondition(false, "Index: n must be positive")
		return 0
	}
	return Between(r, 0, n)
}

// Element returns a uniformly chosen element of s. An empty slice is a
// precondition violation; without checks the zero value is returned. Like
// Index, len(s) is limited to 2^ValueBits().
func Element[S ~[]V, V any, T Word, E comparable, P Engine[T, E]](r *Random[T, E, P], s S) V {
	if len(s) == 0 {
		precondition(false, "Element: empty collection")
		var zero V
		return zero
	}
	return s[r.Index(len(s))]
}

// Sized is a collection that knows its length and can be iterated.
type Sized[V any] interface {
	Len() int
	All() iter.Seq[V]
}

// ElementOf returns a uniformly chosen element of c by walking its iterator up
// to a random position. It is linear in the chosen position; use Element for
// slices. An empty collection is a precondition violation; without checks the
// zero value is returned. c.Len() is limited to 2^ValueBits(), as for Index.
func ElementOf[V any, T Word, E comparable, P Engine[T, E]](r *Random[T, E, P], c Sized[V]) V {
	var zero V
	n := c.Len()
	if n <= 0 {
		precondition(false, "ElementOf: empty collection")
		return zero
	}
	target := r.Index(n)
	i := 0
	for v := range c.All() {
		if i == target {
			return v
		}
		i++
	}
	return zero
}

// Shuffle pseudo-randomizes the order of n elements with a Fisher-Yates
// shuffle, calling swap to exchange elements i and j. A negative n is a
// precondition violation; without checks nothing happens. n is limited to
// 2^ValueBits(), as for Index.
func (r *Random[T, E, P]) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		precondition(false, "Shuffle: n must not be negative")
		return
	}
	for i := n - 1; i > 0; i-- {
		j := r.Index(i + 1)
		swap(i, j)
	}
}

// Gaussian returns an approximately normally distributed value with the given
// mean and standard deviation, using the sum of twelve uniform values
// (Irwin-Hall). Results are confined to mean ± 6·stddev.
func (r *Random[T, E, P]) Gaussian(mean, stddev float64) float64 {
	return GaussianOf(r, mean, stddev)
}

// GaussianOf is Gaussian for any float type.
func GaussianOf[F Float, T Word, E comparable, P Engine[T, E]](r *Random[T, E, P], mean, stddev F) F {
	var sum F
	for range 12 {
		sum += Normalized[F](r)
	}
	return mean + (sum-6)*stddev
}

// RGB8 returns a random 24-bit colour as 0x00RRGGBB.
func (r *Random[T, E, P]) RGB8() uint32 {
	return uint32(r.Bits(24))
}

// RGBA8 returns a random 32-bit colour as 0xRRGGBBAA.
func (r *Random[T, E, P]) RGBA8() uint32 {
	return uint32(r.Bits(32))
}
