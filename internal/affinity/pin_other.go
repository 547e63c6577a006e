//go:build !linux

// File: internal/affinity/pin_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without sched_setaffinity. Pinning
// degrades to runtime.LockOSThread only.

package affinity

// platformPin stub implementation.
func platformPin(cpuID int) error {
	return nil
}

// platformUnpin stub implementation.
func platformUnpin() error {
	return nil
}
