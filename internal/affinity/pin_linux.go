//go:build linux

// File: internal/affinity/pin_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation via sched_setaffinity on the current thread.

package affinity

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// platformPin binds the current OS thread to a single CPU.
func platformPin(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	return unix.SchedSetaffinity(0, &set)
}

// platformUnpin widens the current thread's mask back to all CPUs.
func platformUnpin() error {
	var set unix.CPUSet
	set.Zero()
	for cpu := 0; cpu < runtime.NumCPU(); cpu++ {
		set.Set(cpu)
	}
	return unix.SchedSetaffinity(0, &set)
}
