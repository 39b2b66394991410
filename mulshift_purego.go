//go:build purego

package rnd

const portableMul = true
