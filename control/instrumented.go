// control/instrumented.go
// Author: momentics <momentics@gmail.com>
//
// Instrumented wrapper over api.Ring. Counting and journaling happen in the
// wrapper so the core ring stays branch-light; embedders that want raw
// throughput use the ring directly.

package control

import (
	"sync/atomic"
	"time"

	"github.com/momentics/overring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*InstrumentedRing[any])(nil)

// InstrumentedRing wraps a ring and counts puts, gets, and overwrites.
// Counters are cumulative across Clear/Reset. The wrapper preserves the
// inner ring's SPSC discipline: Put stays producer-side, Get/Peek stay
// consumer-side.
type InstrumentedRing[T any] struct {
	inner      api.Ring[T]
	metrics    *MetricsRegistry
	journal    *Journal
	puts       atomic.Uint64
	gets       atomic.Uint64
	overwrites atomic.Uint64
}

// NewInstrumentedRing wraps inner. metrics and journal may each be nil to
// disable that sink.
func NewInstrumentedRing[T any](inner api.Ring[T], metrics *MetricsRegistry, journal *Journal) *InstrumentedRing[T] {
	return &InstrumentedRing[T]{
		inner:   inner,
		metrics: metrics,
		journal: journal,
	}
}

// Put appends an item, recording an eviction event when the put overwrites
// unread data.
func (ir *InstrumentedRing[T]) Put(item T) {
	if ir.inner.Full() {
		seq := ir.overwrites.Add(1)
		if ir.journal != nil {
			ir.journal.Record(EvictionEvent{Seq: seq, At: time.Now()})
		}
	}
	ir.inner.Put(item)
	ir.puts.Add(1)
}

// Get removes and returns the oldest unread item, false if empty.
func (ir *InstrumentedRing[T]) Get() (T, bool) {
	item, ok := ir.inner.Get()
	if ok {
		ir.gets.Add(1)
	}
	return item, ok
}

// Peek returns the next item without consuming it, false if empty.
func (ir *InstrumentedRing[T]) Peek() (T, bool) {
	return ir.inner.Peek()
}

// Len returns the number of unread items.
func (ir *InstrumentedRing[T]) Len() int { return ir.inner.Len() }

// Cap returns the fixed capacity.
func (ir *InstrumentedRing[T]) Cap() int { return ir.inner.Cap() }

// Full reports whether the next Put will overwrite unread data.
func (ir *InstrumentedRing[T]) Full() bool { return ir.inner.Full() }

// Empty reports whether no unread items remain.
func (ir *InstrumentedRing[T]) Empty() bool { return ir.inner.Empty() }

// Clear drops unread items; counters keep accumulating.
func (ir *InstrumentedRing[T]) Clear() { ir.inner.Clear() }

// Reset restores the inner ring's initial state; counters keep accumulating.
func (ir *InstrumentedRing[T]) Reset() { ir.inner.Reset() }

// Puts returns the cumulative put count.
func (ir *InstrumentedRing[T]) Puts() uint64 { return ir.puts.Load() }

// Gets returns the cumulative successful get count.
func (ir *InstrumentedRing[T]) Gets() uint64 { return ir.gets.Load() }

// Overwrites returns the cumulative count of puts that evicted unread data.
func (ir *InstrumentedRing[T]) Overwrites() uint64 { return ir.overwrites.Load() }

// Publish writes the current counters and occupancy into the metrics
// registry. No-op when the registry is nil.
func (ir *InstrumentedRing[T]) Publish() {
	if ir.metrics == nil {
		return
	}
	ir.metrics.Set("ring.puts", ir.puts.Load())
	ir.metrics.Set("ring.gets", ir.gets.Load())
	ir.metrics.Set("ring.overwrites", ir.overwrites.Load())
	ir.metrics.Set("ring.len", ir.inner.Len())
	ir.metrics.Set("ring.cap", ir.inner.Cap())
}
