//go:build windows

package seed

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Stamp is a raw QueryPerformanceCounter reading. Stamps are only comparable
// within one run of a program.
type Stamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = frequency()
)

// frequency returns the counter frequency in ticks per second.
func frequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("call failed: %v", err))
	}
	return freq
}

// Now samples the performance counter.
func Now() Stamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// Elapsed returns the nanoseconds between two stamps. It is negative if later
// was taken before earlier. The conversion contains an integer division.
func Elapsed(earlier, later Stamp) int64 {
	result := later - earlier
	result *= int64(1_000_000_000)
	result /= qpcFrequency
	return result
}

func stampBits(s Stamp) uint64 {
	return uint64(s)
}
