package seed

import (
	"testing"

	set3 "github.com/TomTonic/Set3"
	"github.com/stretchr/testify/assert"
)

func TestMixersKnownValues(t *testing.T) {
	// first output of splitmix64.c with state 0
	assert.Equal(t, uint64(0xE220A8397B1DCDAF), SplitMix64(0))
	assert.Equal(t, uint64(0xB70FB2CC55AF013F), Moremur(0))
	assert.Equal(t, uint64(0x6A40F7369AE0C0FD), Xnasam(0, DefaultDomain))
	assert.Equal(t, uint64(0x1C71069639D3EDC3), Absorb(0, 0))
}

func TestXnasamDomainSeparation(t *testing.T) {
	for x := range uint64(1000) {
		assert.NotEqual(t, Xnasam(x, DefaultDomain), Xnasam(x, mixDomain), "x=%d", x)
	}
}

func TestMixersAreInjectiveOnSmallInputs(t *testing.T) {
	const n = 100_000
	for name, mix := range map[string]func(uint64) uint64{
		"SplitMix64": SplitMix64,
		"Moremur":    Moremur,
		"Xnasam":     func(x uint64) uint64 { return Xnasam(x, DefaultDomain) },
	} {
		set := set3.EmptyWithCapacity[uint64](n * 7 / 5)
		for x := range uint64(n) {
			set.Add(mix(x))
		}
		assert.Equal(t, uint32(n), set.Size(), "%s produced collisions", name)
	}
}

func TestFold(t *testing.T) {
	const s = uint64(0xDEADBEEFCAFEF00D)
	assert.Equal(t, s, Fold[uint64](s))
	assert.Equal(t, uint32(0x14534EE2), Fold[uint32](s))
	assert.Equal(t, uint16(0x5AB1), Fold[uint16](s))
	assert.Equal(t, uint8(0xEB), Fold[uint8](s))
	assert.Equal(t, Fold[uint32](s), To32(s))
}

func TestAbsorbOrderMatters(t *testing.T) {
	a := Absorb(Absorb(origin, 1), 2)
	b := Absorb(Absorb(origin, 2), 1)
	assert.NotEqual(t, a, b)
}
