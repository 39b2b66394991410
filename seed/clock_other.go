//go:build !windows

package seed

import "time"

// Stamp is a relative timestamp with the highest precision available on the
// current runtime system. Stamps are only comparable within one run of a program.
type Stamp = time.Time

// Now samples the clock.
func Now() Stamp {
	return time.Now()
}

// Elapsed returns the nanoseconds between two stamps. It is negative if later
// was taken before earlier.
func Elapsed(earlier, later Stamp) int64 {
	return later.Sub(earlier).Nanoseconds()
}

func stampBits(s Stamp) uint64 {
	return uint64(s.UnixNano())
}
