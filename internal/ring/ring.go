// File: internal/ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Overwrite ring buffer with atomic absolute counters, padded to prevent
// false sharing. Implements api.Ring for cross-package consistency.

package ring

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/overring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity overwrite ring (single-producer,
// single-consumer safe).
//
// front and back are absolute counters that only ever grow; the slot for a
// counter value is counter&mask. back is advanced by the producer (Put),
// front by the consumer (Get, and Peek's clamp). Both are read atomically by
// either side, so full/empty/len stay coherent across goroutines. The span
// back-front may transiently exceed capacity after overwriting puts; the
// consumer clamps front forward lazily on its next read.
type Buffer[T any] struct {
	data  []T
	mask  uint64
	front atomic.Uint64
	_     cpu.CacheLinePad // keep producer and consumer counters on separate lines
	back  atomic.Uint64
	_     cpu.CacheLinePad
}

// New allocates a ring buffer of power-of-two capacity.
func New[T any](capacity uint64) *Buffer[T] {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		panic("ring capacity must be power of two")
	}
	return &Buffer[T]{
		data: make([]T, capacity),
		mask: capacity - 1,
	}
}

// Put appends an item unconditionally. Once the buffer is full the oldest
// unread slot is overwritten. Producer side only.
func (b *Buffer[T]) Put(item T) {
	back := b.back.Load() + 1
	b.data[back&b.mask] = item
	b.back.Store(back)
}

// Get removes and returns the oldest unread item; ok is false if empty.
// Consumer side only.
func (b *Buffer[T]) Get() (T, bool) {
	back := b.back.Load()
	front := b.front.Load()
	if back == front {
		var zero T
		return zero, false
	}
	// Overwriting puts may have run past front; catch it up to the oldest
	// still-valid slot before reading.
	if back-front > b.mask {
		front = back - uint64(len(b.data))
	}
	front++
	item := b.data[front&b.mask]
	b.front.Store(front)
	return item, true
}

// Peek returns the item Get would return next without consuming it; ok is
// false if empty. Peek applies the same clamp as Get when writes have run
// past capacity, so it is not a pure read on an over-full buffer. Consumer
// side only.
func (b *Buffer[T]) Peek() (T, bool) {
	back := b.back.Load()
	front := b.front.Load()
	if back == front {
		var zero T
		return zero, false
	}
	if back-front > b.mask {
		front = back - uint64(len(b.data))
		b.front.Store(front)
	}
	return b.data[(front+1)&b.mask], true
}

// Len returns the number of unread items, capped at capacity.
func (b *Buffer[T]) Len() int {
	back := b.back.Load()
	front := b.front.Load()
	if span := back - front; span < uint64(len(b.data)) {
		return int(span)
	}
	return len(b.data)
}

// Cap returns the fixed buffer capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Full reports whether the unread span has reached capacity, i.e. the next
// Put evicts unread data.
func (b *Buffer[T]) Full() bool {
	return b.back.Load()-b.front.Load() >= uint64(len(b.data))
}

// Empty reports whether no unread items remain.
func (b *Buffer[T]) Empty() bool {
	return b.back.Load() == b.front.Load()
}

// Clear zeroes storage and drops all unread items. The absolute counters
// continue from their current position. Callers must quiesce both sides.
func (b *Buffer[T]) Clear() {
	clear(b.data)
	b.front.Store(b.back.Load())
}

// Reset restores the freshly-constructed state. Callers must quiesce both
// sides.
func (b *Buffer[T]) Reset() {
	clear(b.data)
	b.front.Store(0)
	b.back.Store(0)
}
