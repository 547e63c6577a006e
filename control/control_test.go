// control/control_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control_test

import (
	"testing"

	"github.com/momentics/overring/control"
	"github.com/momentics/overring/internal/ring"
)

// TestMetricsRegistry_SetGetSnapshot tests registration and snapshot reads.
func TestMetricsRegistry_SetGetSnapshot(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Set("ring.len", 3)
	mr.Set("ring.cap", 8)

	if v, ok := mr.Get("ring.len"); !ok || v.(int) != 3 {
		t.Errorf("Get(ring.len): expected (3, true), got (%v, %v)", v, ok)
	}
	snap := mr.GetSnapshot()
	if len(snap) != 2 {
		t.Errorf("expected 2 metrics in snapshot, got %d", len(snap))
	}
	if mr.LastUpdated().IsZero() {
		t.Error("LastUpdated should be set after Set")
	}

	// Snapshot is a copy, not a view.
	snap["ring.len"] = 99
	if v, _ := mr.Get("ring.len"); v.(int) != 3 {
		t.Error("mutating a snapshot must not affect the registry")
	}
}

// TestDebugProbes_DumpState tests probe registration and dumping.
func TestDebugProbes_DumpState(t *testing.T) {
	dp := control.NewDebugProbes()
	rb := ring.New[int](4)
	rb.Put(1)
	rb.Put(2)
	dp.RegisterProbe("ring.len", func() any { return rb.Len() })
	dp.RegisterProbe("ring.full", func() any { return rb.Full() })

	state := dp.DumpState()
	if state["ring.len"].(int) != 2 {
		t.Errorf("expected ring.len probe 2, got %v", state["ring.len"])
	}
	if state["ring.full"].(bool) {
		t.Error("expected ring.full probe false")
	}
}

// TestJournal_TrimsToDepth verifies oldest-first trimming past the depth.
func TestJournal_TrimsToDepth(t *testing.T) {
	j := control.NewJournal(3)
	for seq := uint64(1); seq <= 5; seq++ {
		j.Record(control.EvictionEvent{Seq: seq})
	}
	if j.Len() != 3 {
		t.Fatalf("expected 3 retained events, got %d", j.Len())
	}
	oldest, ok := j.Oldest()
	if !ok || oldest.Seq != 3 {
		t.Errorf("expected oldest Seq 3, got (%v, %v)", oldest.Seq, ok)
	}
	events := j.Drain()
	for i, want := range []uint64{3, 4, 5} {
		if events[i].Seq != want {
			t.Errorf("drained event %d: expected Seq %d, got %d", i, want, events[i].Seq)
		}
	}
	if j.Len() != 0 {
		t.Error("journal should be empty after Drain")
	}
}

// TestInstrumentedRing_Counts verifies put/get/overwrite accounting and
// journal wiring around a capacity-2 ring.
func TestInstrumentedRing_Counts(t *testing.T) {
	mr := control.NewMetricsRegistry()
	j := control.NewJournal(8)
	ir := control.NewInstrumentedRing[int](ring.New[int](2), mr, j)

	ir.Put(1)
	ir.Put(2)
	ir.Put(3) // evicts 1
	ir.Put(4) // evicts 2

	if ir.Puts() != 4 {
		t.Errorf("expected 4 puts, got %d", ir.Puts())
	}
	if ir.Overwrites() != 2 {
		t.Errorf("expected 2 overwrites, got %d", ir.Overwrites())
	}
	if j.Len() != 2 {
		t.Errorf("expected 2 journal events, got %d", j.Len())
	}

	if v, ok := ir.Get(); !ok || v != 3 {
		t.Errorf("expected oldest surviving value 3, got (%d, %v)", v, ok)
	}
	if v, ok := ir.Get(); !ok || v != 4 {
		t.Errorf("expected value 4, got (%d, %v)", v, ok)
	}
	if _, ok := ir.Get(); ok {
		t.Error("Get on empty instrumented ring should report ok=false")
	}
	if ir.Gets() != 2 {
		t.Errorf("expected 2 successful gets, got %d", ir.Gets())
	}

	ir.Publish()
	snap := mr.GetSnapshot()
	if snap["ring.puts"].(uint64) != 4 {
		t.Errorf("published ring.puts: expected 4, got %v", snap["ring.puts"])
	}
	if snap["ring.overwrites"].(uint64) != 2 {
		t.Errorf("published ring.overwrites: expected 2, got %v", snap["ring.overwrites"])
	}
	if snap["ring.len"].(int) != 0 {
		t.Errorf("published ring.len: expected 0, got %v", snap["ring.len"])
	}
}

// TestInstrumentedRing_ClearKeepsCounters verifies counters are cumulative
// across Clear.
func TestInstrumentedRing_ClearKeepsCounters(t *testing.T) {
	ir := control.NewInstrumentedRing[int](ring.New[int](4), nil, nil)
	ir.Put(1)
	ir.Put(2)
	ir.Clear()

	if !ir.Empty() {
		t.Error("instrumented ring should be empty after Clear")
	}
	if ir.Puts() != 2 {
		t.Errorf("Clear must not reset put count, got %d", ir.Puts())
	}
	ir.Put(9)
	if v, ok := ir.Get(); !ok || v != 9 {
		t.Errorf("put/get after Clear: expected (9, true), got (%d, %v)", v, ok)
	}
}
