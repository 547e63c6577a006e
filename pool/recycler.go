// File: pool/recycler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded free list on top of the overwrite ring. Put never blocks and
// never fails; freeing onto a full list silently drops the oldest freed
// object, which the GC then reclaims. Get falls back to the factory on a
// miss. One goroutine may Put while another Gets, per the ring's SPSC
// discipline.

package pool

import (
	"github.com/momentics/overring/internal/ring"
)

// Ensure compile-time interface compliance.
var _ ObjectPool[any] = (*Recycler[any])(nil)

// Recycler is a fixed-capacity object recycler with drop-oldest overflow.
type Recycler[T any] struct {
	free    *ring.Buffer[T]
	factory func() T
}

// NewRecycler creates a recycler holding at most capacity free objects.
// capacity must be a power of two; factory produces objects on a miss.
func NewRecycler[T any](capacity uint64, factory func() T) *Recycler[T] {
	return &Recycler[T]{
		free:    ring.New[T](capacity),
		factory: factory,
	}
}

// Get returns a recycled object, or a fresh one when the free list is empty.
func (r *Recycler[T]) Get() T {
	if obj, ok := r.free.Get(); ok {
		return obj
	}
	return r.factory()
}

// Put returns an object to the free list. On overflow the oldest freed
// object is overwritten and left to the GC.
func (r *Recycler[T]) Put(obj T) {
	r.free.Put(obj)
}

// Len returns the number of objects currently held.
func (r *Recycler[T]) Len() int { return r.free.Len() }

// Cap returns the free list capacity.
func (r *Recycler[T]) Cap() int { return r.free.Cap() }
