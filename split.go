package rnd

import (
	"math/bits"

	"github.com/TomTonic/rnd/seed"
)

// splitDomain keeps split seeds apart from ordinary seeding ("SPLT-01").
const splitDomain = 0x53504C542D3031

// Split derives a new, statistically independent generator of the same type.
// It consumes exactly two draws from r, combines them into 64 bits, mixes them
// with xNASAM under a dedicated domain and seeds a fresh engine with the
// result through SeedFrom64, so narrow engines implementing Seeder64 keep all
// 64 bits. Splitting is deterministic: two equal generators produce equal
// children.
func (r *Random[T, E, P]) Split() Random[T, E, P] {
	a := uint64(r.Next())
	b := uint64(r.Next())
	mixed := seed.Xnasam(bits.RotateLeft64(a, 32)^b, splitDomain)
	return NewSeededFrom64[T, E, P](mixed)
}
