package seed

import "os"

// origin is the fixed starting point of FromAll.
const origin uint64 = 0xD1B54A32D192ED03

// FromCPUTime returns a seed derived from the CPU time consumed by this
// process so far. On its own it is weak; it mainly adds jitter to FromAll.
func FromCPUTime() uint64 {
	return Xnasam(cpuTicks(), DefaultDomain)
}

// FromProcess returns a seed derived from the process and parent process ids.
// Concurrent processes started from the same binary get different values.
func FromProcess() uint64 {
	id := uint64(os.Getpid())<<32 ^ uint64(os.Getppid())
	return Xnasam(id, DefaultDomain)
}

// FromAll absorbs every available source (binary path, process identity,
// clock, CPU time and operating system entropy) into one seed. Use it when a
// stream should simply be different on every run.
func FromAll() uint64 {
	s := origin
	if len(os.Args) > 0 {
		s = Absorb(s, FromText(os.Args[0]))
	}
	s = Absorb(s, FromProcess())
	s = Absorb(s, FromTime())
	s = Absorb(s, FromCPUTime())
	s = Absorb(s, FromSystemEntropy())
	return s
}
