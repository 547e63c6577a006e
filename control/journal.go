// control/journal.go
// Author: momentics <momentics@gmail.com>
//
// Bounded diagnostic journal of overwrite events. An entry is recorded each
// time a put evicts an unread item, letting operators see when and how often
// the consumer fell behind. The journal itself trims oldest-first, mirroring
// the ring's own policy.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// EvictionEvent describes one overwritten (lost) item.
type EvictionEvent struct {
	// Seq is the running count of evictions at the time of the event,
	// starting at 1.
	Seq uint64
	// At is the event timestamp.
	At time.Time
}

// Journal is a depth-bounded FIFO of eviction events. Safe for concurrent
// use.
type Journal struct {
	mu    sync.Mutex
	depth int
	q     *queue.Queue
}

// NewJournal creates a journal keeping at most depth events.
func NewJournal(depth int) *Journal {
	if depth < 1 {
		depth = 1
	}
	return &Journal{
		depth: depth,
		q:     queue.New(),
	}
}

// Record appends an event, trimming the oldest entries past depth.
func (j *Journal) Record(ev EvictionEvent) {
	j.mu.Lock()
	j.q.Add(ev)
	for j.q.Length() > j.depth {
		j.q.Remove()
	}
	j.mu.Unlock()
}

// Len returns the number of retained events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}

// Oldest returns the oldest retained event without removing it.
func (j *Journal) Oldest() (EvictionEvent, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.q.Length() == 0 {
		return EvictionEvent{}, false
	}
	return j.q.Peek().(EvictionEvent), true
}

// Drain removes and returns all retained events, oldest first.
func (j *Journal) Drain() []EvictionEvent {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]EvictionEvent, 0, j.q.Length())
	for j.q.Length() > 0 {
		out = append(out, j.q.Remove().(EvictionEvent))
	}
	return out
}
