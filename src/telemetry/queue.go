package telemetry

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultQueueCapacity bounds a queue when the caller does not choose one.
const DefaultQueueCapacity = 1024

// Queue couples the control-loop producer to the dashboard consumer.
//
// It is bounded: when full, Push evicts the oldest sample to make room.
// Recent samples are worth more than a backlog of stale ones, so the queue
// drops from the front rather than blocking the producer or growing without
// bound. Push and Drain never block.
//
// All methods are safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	buf      []Sample
	capacity int

	pushed  uint64
	drained uint64
	dropped uint64

	streamID string
}

// QueueStats is a snapshot of queue counters.
type QueueStats struct {
	Pushed  uint64
	Drained uint64
	Dropped uint64
}

// NewQueue creates a bounded queue. Non-positive capacity selects
// DefaultQueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		buf:      make([]Sample, 0, capacity),
		capacity: capacity,
		streamID: uuid.NewString(),
	}
}

// Push appends a sample, evicting the oldest entry if the queue is full.
// It reports whether the sample was stored without an eviction.
func (q *Queue) Push(s Sample) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pushed++
	evicted := false
	if len(q.buf) >= q.capacity {
		copy(q.buf, q.buf[1:])
		q.buf = q.buf[:len(q.buf)-1]
		q.dropped++
		evicted = true
	}
	q.buf = append(q.buf, s)
	return !evicted
}

// Drain removes and returns everything currently queued. It never waits:
// an empty queue yields nil immediately.
func (q *Queue) Drain() []Sample {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.buf) == 0 {
		return nil
	}
	out := q.buf
	q.buf = make([]Sample, 0, q.capacity)
	q.drained += uint64(len(out))
	return out
}

// Len returns the number of samples currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return QueueStats{Pushed: q.pushed, Drained: q.drained, Dropped: q.dropped}
}

// StreamID identifies this queue in logs so interleaved runs can be told apart.
func (q *Queue) StreamID() string { return q.streamID }
