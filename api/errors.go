// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the overring library.

package api

import "errors"

var (
	// ErrCapacityNotPow2 indicates a requested ring capacity that is zero
	// or not a power of two.
	ErrCapacityNotPow2 = errors.New("ring capacity must be a power of two")

	// ErrInvalidJournalDepth indicates a negative eviction journal depth.
	ErrInvalidJournalDepth = errors.New("journal depth must not be negative")

	// ErrInvalidCPU indicates a CPU index outside the usable range for
	// thread pinning.
	ErrInvalidCPU = errors.New("invalid CPU index")
)
