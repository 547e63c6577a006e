// Package pool
// Author: momentics <momentics@gmail.com>
//
// Object recycling built on the overwrite ring. The Recycler keeps a
// bounded free list whose eviction policy is the ring's own: when more
// objects are freed than the list holds, the oldest freed object is dropped
// to the garbage collector instead of growing the list. SyncPool is the
// unbounded sync.Pool fallback.
// See recycler.go, objpool.go for implementation details.
package pool
