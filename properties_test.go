package rnd_test

import (
	"iter"
	"math"
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/TomTonic/rnd"
	"github.com/TomTonic/rnd/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widthOf[T rnd.Word]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

func (s engineSuite[T, E, P]) belowRespectsBound(t *testing.T) {
	r := s.seeded(0xB0B0)
	bounds := s.seeded(0xD1CE)
	for i := range 10_000 {
		b := bounds.Next()
		if b == 0 {
			b = 1
		}
		for range 8 {
			if got := r.Below(b); got >= b {
				t.Fatalf("round %d: Below(%d) = %d", i, b, got)
			}
		}
	}
	for _, b := range []T{1, 2, 3, ^T(0) - 1, ^T(0)} {
		for range 1000 {
			require.Less(t, r.Below(b), b)
		}
	}
}

func (s engineSuite[T, E, P]) fixedBoundMatchesBelow(t *testing.T) {
	w := widthOf[T]()
	for k := range w {
		n := T(1) << k
		fb := rnd.FixedBound(n)
		require.True(t, fb.PowerOfTwo())
		require.Equal(t, n, fb.N())
		fast, slow := s.seeded(uint64(k)+1), s.seeded(uint64(k)+1)
		for i := range 1000 {
			f, b := fast.BelowFixed(fb), slow.Below(n)
			if f != b {
				t.Fatalf("bound 2^%d, draw %d: BelowFixed=%d Below=%d", k, i, f, b)
			}
		}
		require.True(t, fast == slow, "bound 2^%d: streams out of sync", k)
	}

	fb := rnd.FixedBound(T(6))
	assert.False(t, fb.PowerOfTwo())
	a, b := s.seeded(9), s.seeded(9)
	for range 1000 {
		require.Equal(t, b.Below(6), a.BelowFixed(fb))
	}
}

func (s engineSuite[T, E, P]) fixedPowerOfTwoHomogeneity(t *testing.T) {
	const bins = 16
	const samples = 64_000
	fb := rnd.FixedBound(T(bins))
	fast, slow := s.seeded(11), s.seeded(12)
	a := make([]int, bins)
	b := make([]int, bins)
	for range samples {
		a[fast.BelowFixed(fb)]++
		b[slow.Below(bins)]++
	}
	x2, p := stats.Homogeneity(a, b)
	t.Logf("homogeneity of fast path vs multiply-shift: χ²=%.3f p=%.4f", x2, p)
	assert.Greater(t, p, 0.0001)
}

func (s engineSuite[T, E, P]) betweenSignedRange(t *testing.T) {
	r := s.seeded(0xACE)
	seen := make(map[int]int)
	for range 10_000 {
		v := rnd.Between(&r, -5, 7)
		if v < -5 || v > 6 {
			t.Fatalf("Between(-5, 7) = %d", v)
		}
		seen[v]++
	}
	assert.Len(t, seen, 12)

	for range 1000 {
		v8 := rnd.Between(&r, int8(-128), int8(127))
		require.Less(t, v8, int8(127))
		v := r.IntBetween(100, 103)
		require.True(t, v >= 100 && v < 103)
		f := r.Float64Between(-2.5, 2.5)
		require.True(t, f >= -2.5 && f < 2.5)
		g := r.Float32Between(10, 20)
		require.True(t, g >= 10 && g < 20)
		h := rnd.BetweenFloat(&r, float32(-1), float32(1))
		require.True(t, h >= -1 && h < 1)
	}
}

func checkUnit[F float32 | float64](t *testing.T, name string, v F, lo F) {
	x := float64(v)
	if math.IsNaN(x) || math.IsInf(x, 0) || v < lo || v >= 1 {
		t.Fatalf("%s out of range: %v", name, v)
	}
	if lo == 0 && math.Signbit(x) {
		t.Fatalf("%s returned -0", name)
	}
}

func (s engineSuite[T, E, P]) floatsInUnitInterval(t *testing.T) {
	r := s.seeded(0xF10A7)
	var sum float64
	const n = 20_000
	for range n {
		f64 := r.Float64()
		sum += f64
		checkUnit(t, "Float64", f64, 0)
		checkUnit(t, "Float32", r.Float32(), 0)
		checkUnit(t, "SignedFloat64", r.SignedFloat64(), -1)
		checkUnit(t, "SignedFloat32", r.SignedFloat32(), -1)
		checkUnit(t, "Normalized[float32]", rnd.Normalized[float32](&r), 0)
		checkUnit(t, "Normalized[float64]", rnd.Normalized[float64](&r), 0)
		checkUnit(t, "SignedNormalized[float32]", rnd.SignedNormalized[float32](&r), -1)
	}
	mean := sum / n
	assert.InDelta(t, 0.5, mean, 0.01)

	// 52 mantissa bits are gathered even from narrow engines
	seen := make(map[float64]struct{}, 10_000)
	for range 10_000 {
		seen[r.Float64()] = struct{}{}
	}
	assert.Greater(t, len(seen), 9_990)
}

func (s engineSuite[T, E, P]) sameSeedSameStream(t *testing.T) {
	a, b := s.seeded(1234), s.seeded(1234)
	require.True(t, a == b)
	for i := range 1024 {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
	assert.True(t, a == b)

	c, d := rnd.New[T, E, P](), rnd.New[T, E, P]()
	assert.True(t, c == d)
	c.Seed(77)
	d.Seed(77)
	assert.True(t, c == d)
	c.Reset()
	assert.True(t, c == rnd.New[T, E, P]())
	assert.True(t, rnd.FromEngine[T, E, P](c.Engine()) == c)
}

func (s engineSuite[T, E, P]) differentSeedsDiverge(t *testing.T) {
	a, b := s.seeded(1), s.seeded(2)
	for range 32 {
		if a.Next() != b.Next() {
			return
		}
	}
	t.Fatal("seeds 1 and 2 produced 32 identical draws")
}

func (s engineSuite[T, E, P]) discardMatchesNext(t *testing.T) {
	for _, n := range []uint64{0, 1, 25, 1000} {
		skipped, stepped := s.seeded(99), s.seeded(99)
		skipped.Discard(n)
		for range n {
			stepped.Next()
		}
		require.True(t, skipped == stepped, "Discard(%d) differs from %d draws", n, n)
	}
}

func (s engineSuite[T, E, P]) splitDeterministicAndDecorrelated(t *testing.T) {
	p1, p2 := s.seeded(4242), s.seeded(4242)
	before := p1
	c1, c2 := p1.Split(), p2.Split()
	require.True(t, c1 == c2, "equal parents must produce equal children")
	require.True(t, p1 == p2)

	before.Discard(2)
	assert.True(t, before == p1, "Split must consume exactly two draws")

	const n = 1024
	matches := 0
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range n {
		a, b := p1.Next(), c1.Next()
		if a == b {
			matches++
		}
		xs[i], ys[i] = float64(a), float64(b)
	}
	assert.Less(t, matches, n/16, "child repeats the parent stream")
	corr := correlation(xs, ys)
	t.Logf("parent/child correlation over %d draws: %.4f", n, corr)
	assert.Less(t, math.Abs(corr), 0.15)

	grandchild := c1.Split()
	assert.False(t, grandchild == c1)
}

func correlation(xs, ys []float64) float64 {
	mx, vx, _ := stats.Statistics(xs)
	my, vy, _ := stats.Statistics(ys)
	var cov float64
	for i := range xs {
		cov += (xs[i] - mx) * (ys[i] - my)
	}
	cov /= float64(len(xs))
	return cov / math.Sqrt(vx*vy)
}

func (s engineSuite[T, E, P]) bitsRespectWidth(t *testing.T) {
	r := s.seeded(0xB175)
	for _, n := range []uint{1, 8, 16, 32, 52} {
		limit := uint64(1) << n
		for range 1000 {
			if v := r.Bits(n); v >= limit {
				t.Fatalf("Bits(%d) = %#x", n, v)
			}
		}
	}
	var or uint64
	for range 1000 {
		or |= r.Bits(64)
	}
	assert.Equal(t, ^uint64(0), or, "Bits(64) never set some bits")

	w := widthOf[T]()
	for k := uint(1); k <= w; k++ {
		a, b := s.seeded(uint64(k)), s.seeded(uint64(k))
		require.Equal(t, uint64(b.Next())>>(w-k), a.Bits(k), "Bits(%d) must take the high bits", k)
	}
	if 2*w <= 64 {
		a, b := s.seeded(5), s.seeded(5)
		hi, lo := uint64(b.Next()), uint64(b.Next())
		assert.Equal(t, hi<<w|lo, a.Bits(2*w), "Bits(%d) must fill high-to-low", 2*w)
		assert.True(t, a == b)
	}

	c := s.seeded(8)
	_ = c.Uint8()
	_ = c.Uint16()
	_ = c.Uint32()
	_ = c.Uint64()
	assert.Equal(t, uint(w), c.ValueBits())
	assert.Equal(t, T(0), c.Min())
	assert.Equal(t, ^T(0), c.Max())
}

func (s engineSuite[T, E, P]) boundOneConsumesOneDraw(t *testing.T) {
	a, b := s.seeded(31), s.seeded(31)
	assert.Equal(t, T(0), a.Below(1))
	b.Next()
	assert.True(t, a == b)

	assert.Equal(t, T(0), a.BelowFixed(rnd.FixedBound(T(1))))
	b.Next()
	assert.True(t, a == b)
}

type bag []string

func (b bag) Len() int              { return len(b) }
func (b bag) All() iter.Seq[string] { return slices.Values(b) }

func (s engineSuite[T, E, P]) derivedHelpers(t *testing.T) {
	r := s.seeded(0xDE21)

	heads := 0
	for range 10_000 {
		if r.CoinFlip() {
			heads++
		}
	}
	assert.InDelta(t, 5000, heads, 300)

	for range 1000 {
		require.False(t, r.Chance(0))
		require.True(t, r.Chance(1))
		require.Less(t, r.Index(7), 7)
		require.Less(t, r.RGB8(), uint32(1)<<24)
	}

	colours := []string{"red", "green", "blue"}
	picked := map[string]bool{}
	fromBag := map[string]bool{}
	for range 300 {
		picked[rnd.Element(&r, colours)] = true
		fromBag[rnd.ElementOf[string](&r, bag(colours))] = true
	}
	assert.Len(t, picked, 3)
	assert.Len(t, fromBag, 3)

	deck := make([]int, 52)
	for i := range deck {
		deck[i] = i
	}
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	sorted := slices.Clone(deck)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v, "Shuffle lost or duplicated an element")
	}
	assert.False(t, slices.IsSorted(deck))

	gs := make([]float64, 50_000)
	for i := range gs {
		gs[i] = r.Gaussian(10, 2)
		require.True(t, gs[i] >= -2 && gs[i] <= 22, "Gaussian outside mean ± 6σ: %v", gs[i])
	}
	mean, _, stddev := stats.Statistics(gs)
	assert.True(t, stats.FloatsEqualWithTolerance(mean, 10, 0.5), "Gaussian mean %.4f, want 10", mean)
	assert.True(t, stats.FloatsEqualWithTolerance(stddev, 2, 2.5), "Gaussian stddev %.4f, want 2", stddev)
	g32 := rnd.GaussianOf(&r, float32(0), float32(1))
	assert.True(t, g32 >= -6 && g32 <= 6)

	std := rand.New(&r)
	for range 1000 {
		require.Less(t, std.IntN(10), 10)
	}
}

func (s engineSuite[T, E, P]) uniformBelow(t *testing.T) {
	check := func(bins int) {
		r := s.seeded(uint64(bins) * 1009)
		counts := make([]int, bins)
		for range 100_000 {
			counts[r.Below(T(bins))]++
		}
		x2, p := stats.Uniformity(counts)
		t.Logf("Below(%d): χ²=%.3f p=%.4f", bins, x2, p)
		assert.Greater(t, p, 0.0001)
	}
	check(16)
	// multiply-shift bias is bound/2^width; only test odd bounds where it is negligible
	if widthOf[T]() >= 16 {
		check(10)
	}
}

var _ rand.Source = (*rnd.PCG32)(nil)
