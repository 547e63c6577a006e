// File: facade/overring.go
// Unified facade layer for the overring library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Overring struct, which aggregates the core ring,
// metrics registry, debug probes, eviction journal, and CPU pinning behind
// a single facade built from immutable configuration. Ring() exposes the
// assembled api.Ring; the remaining accessors expose the control plane
// around it.

package facade

import (
	"github.com/momentics/overring/api"
	"github.com/momentics/overring/control"
	"github.com/momentics/overring/internal/affinity"
	"github.com/momentics/overring/internal/ring"
)

// Config holds parameters immutable per instance.
type Config struct {
	Capacity      uint64 // Ring capacity; must be a power of two
	EnableMetrics bool   // Whether to publish counters into a metrics registry
	EnableDebug   bool   // Whether to register debug probes
	JournalDepth  int    // Retained eviction events; 0 disables the journal
	ProducerCPU   int    // CPU to pin the producer thread to; -1 disables
	ConsumerCPU   int    // CPU to pin the consumer thread to; -1 disables
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Capacity:      1024, // 1024-slot ring
		EnableMetrics: true, // Enable built-in metrics
		EnableDebug:   true, // Enable debug probes
		JournalDepth:  64,   // Keep the last 64 eviction events
		ProducerCPU:   -1,   // No pinning by default
		ConsumerCPU:   -1,
	}
}

// Overring aggregates a ring with its control plane.
type Overring[T any] struct {
	cfg     Config
	inner   *ring.Buffer[T]
	instr   *control.InstrumentedRing[T]
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	journal *control.Journal
}

// New validates cfg and assembles a ring with the configured control plane.
func New[T any](cfg *Config) (*Overring[T], error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Capacity == 0 || cfg.Capacity&(cfg.Capacity-1) != 0 {
		return nil, api.ErrCapacityNotPow2
	}
	if cfg.JournalDepth < 0 {
		return nil, api.ErrInvalidJournalDepth
	}

	o := &Overring[T]{
		cfg:   *cfg,
		inner: ring.New[T](cfg.Capacity),
	}
	if cfg.EnableMetrics {
		o.metrics = control.NewMetricsRegistry()
	}
	if cfg.JournalDepth > 0 {
		o.journal = control.NewJournal(cfg.JournalDepth)
	}
	o.instr = control.NewInstrumentedRing[T](o.inner, o.metrics, o.journal)

	if cfg.EnableDebug {
		o.probes = control.NewDebugProbes()
		o.probes.RegisterProbe("ring.len", func() any { return o.inner.Len() })
		o.probes.RegisterProbe("ring.cap", func() any { return o.inner.Cap() })
		o.probes.RegisterProbe("ring.full", func() any { return o.inner.Full() })
		o.probes.RegisterProbe("ring.empty", func() any { return o.inner.Empty() })
		o.probes.RegisterProbe("ring.overwrites", func() any { return o.instr.Overwrites() })
	}
	return o, nil
}

// Ring returns the instrumented ring implementing api.Ring.
func (o *Overring[T]) Ring() api.Ring[T] {
	return o.instr
}

// Metrics returns the metrics registry, nil when metrics are disabled.
func (o *Overring[T]) Metrics() *control.MetricsRegistry {
	return o.metrics
}

// Probes returns the debug probe registry, nil when debug is disabled.
func (o *Overring[T]) Probes() *control.DebugProbes {
	return o.probes
}

// Journal returns the eviction journal, nil when disabled.
func (o *Overring[T]) Journal() *control.Journal {
	return o.journal
}

// Snapshot publishes current counters and returns the merged view of
// metrics and probe state.
func (o *Overring[T]) Snapshot() map[string]any {
	out := make(map[string]any)
	if o.metrics != nil {
		o.instr.Publish()
		for k, v := range o.metrics.GetSnapshot() {
			out[k] = v
		}
	}
	if o.probes != nil {
		for k, v := range o.probes.DumpState() {
			out[k] = v
		}
	}
	return out
}

// PinProducer pins the calling goroutine's thread to the configured
// producer CPU. No-op when ProducerCPU is negative.
func (o *Overring[T]) PinProducer() error {
	if o.cfg.ProducerCPU < 0 {
		return nil
	}
	return affinity.Pin(o.cfg.ProducerCPU)
}

// PinConsumer pins the calling goroutine's thread to the configured
// consumer CPU. No-op when ConsumerCPU is negative.
func (o *Overring[T]) PinConsumer() error {
	if o.cfg.ConsumerCPU < 0 {
		return nil
	}
	return affinity.Pin(o.cfg.ConsumerCPU)
}

// Unpin releases a pin taken by PinProducer or PinConsumer. Call from the
// pinned goroutine.
func (o *Overring[T]) Unpin() error {
	return affinity.Unpin()
}
