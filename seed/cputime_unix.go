//go:build linux || darwin || freebsd

package seed

import "golang.org/x/sys/unix"

func cpuTicks() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0
	}
	return uint64(ts.Nano())
}
