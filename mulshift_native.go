//go:build !purego

package rnd

// portableMul selects the limb-based product in MulShift. The purego build
// tag switches it on for targets where math/bits.Mul64 is not an intrinsic.
const portableMul = false
