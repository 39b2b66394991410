//go:build release

package rnd

const assertions = false

func precondition(bool, string) {}
