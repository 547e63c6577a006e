// File: internal/affinity/pin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package affinity pins the producer and consumer goroutines of a ring to
// dedicated CPU cores. Pinning both sides keeps the counters' cache lines
// from migrating between cores, the main latency knob for an SPSC handoff.

package affinity

import (
	"runtime"

	"github.com/momentics/overring/api"
)

// Pin locks the calling goroutine to its OS thread and binds that thread to
// cpuID. Callers should Pin from the goroutine that will run the producer or
// consumer loop, and Unpin from the same goroutine when done.
func Pin(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return api.ErrInvalidCPU
	}
	runtime.LockOSThread()
	if err := platformPin(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin restores the thread's default CPU mask and releases the OS thread.
func Unpin() error {
	err := platformUnpin()
	runtime.UnlockOSThread()
	return err
}
