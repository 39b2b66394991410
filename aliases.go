package rnd

import "github.com/TomTonic/rnd/engines"

// Ready-made instantiations for the engines in package engines. Create them
// with New, NewSeeded or FromEngine, e.g.
//
//	r := rnd.New[uint64, engines.Xoshiro256SS]() // r has type rnd.Xoshiro256SS
type (
	PCG32          = Random[uint32, engines.PCG32, *engines.PCG32]
	SmallFast32    = Random[uint32, engines.SmallFast32, *engines.SmallFast32]
	SmallFast64    = Random[uint64, engines.SmallFast64, *engines.SmallFast64]
	Xoshiro256SS   = Random[uint64, engines.Xoshiro256SS, *engines.Xoshiro256SS]
	RomuDuoJr      = Random[uint64, engines.RomuDuoJr, *engines.RomuDuoJr]
	Konadare192    = Random[uint64, engines.Konadare192, *engines.Konadare192]
	XorShift64Star = Random[uint64, engines.XorShift64Star, *engines.XorShift64Star]
	Narrow16       = Random[uint16, engines.Narrow16, *engines.Narrow16]
	Narrow8        = Random[uint8, engines.Narrow8, *engines.Narrow8]
)
