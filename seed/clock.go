package seed

import (
	"math"
	"sync"
)

const resolutionRounds = 1_000_000

// resolution caches the result of Resolution in nanoseconds
var (
	resolution     int64
	resolutionOnce sync.Once
)

// Resolution returns the smallest non-zero difference between two Now() calls
// in nanoseconds, measured once and then cached. It tells how many low bits
// of a FromTime seed actually change between calls: 100ns on Windows, and
// typically between 20ns and 100ns on Linux and macOS.
// Resolution is safe for concurrent use.
func Resolution() int64 {
	resolutionOnce.Do(func() {
		resolution = calibrate(resolutionRounds)
	})
	return resolution
}

func calibrate(rounds int) int64 {
	minDiff := int64(math.MaxInt64)
	for range rounds {
		t1 := Now()
		t2 := Now()
		diff := Elapsed(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}

// FromTime returns a seed derived from the highest-resolution clock of the
// runtime system. Two calls in quick succession usually differ, but nothing
// about the value is secret.
func FromTime() uint64 {
	return Xnasam(stampBits(Now()), DefaultDomain)
}
