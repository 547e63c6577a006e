// File: internal/ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements the fixed-capacity overwrite ring buffer at the
// core of overring: a single-producer/single-consumer FIFO addressed by
// absolute position counters, with slot indices derived via power-of-two
// mask at access time. Writes never fail; a write to a full buffer evicts
// the oldest unread slot.
package ring
