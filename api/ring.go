// Package api
// Author: momentics <momentics@gmail.com>
//
// Overwrite ring buffer contract for single-producer/single-consumer use.

package api

// Ring is a fixed-capacity FIFO ring buffer with overwrite-on-full policy.
// Capacity is a power of two fixed at construction. One goroutine may call
// Put while another calls Get/Peek/Len/Full/Empty concurrently without
// locks; Clear and Reset require both sides to be quiescent.
type Ring[T any] interface {
	// Put appends an item unconditionally. When the buffer is full the
	// logically oldest unread item is silently overwritten.
	Put(item T)
	// Get removes and returns the oldest unread item, false if empty.
	Get() (T, bool)
	// Peek returns the item Get would return next without consuming it,
	// false if empty. When writes have run past capacity, Peek performs
	// the same read-cursor clamp as Get.
	Peek() (T, bool)
	// Len returns the number of unread items, at most Cap.
	Len() int
	// Cap returns the fixed buffer capacity.
	Cap() int
	// Full reports whether the next Put will overwrite unread data.
	Full() bool
	// Empty reports whether no unread items remain.
	Empty() bool
	// Clear drops all unread items and zeroes storage. The absolute
	// position counters keep their current values.
	Clear()
	// Reset restores the freshly-constructed state: counters to zero,
	// storage zeroed.
	Reset()
}
