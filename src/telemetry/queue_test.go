package telemetry

import (
	"sync"
	"testing"
)

func TestQueue_DrainEmptyReturnsNil(t *testing.T) {
	q := NewQueue(8)
	if got := q.Drain(); got != nil {
		t.Fatalf("drain of empty queue = %v; want nil", got)
	}
	st := q.Stats()
	if st.Pushed != 0 || st.Drained != 0 || st.Dropped != 0 {
		t.Fatalf("unexpected stats on empty queue: %+v", st)
	}
}

func TestQueue_PushDrainOrder(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 5; i++ {
		q.Push(Frequency{T: float64(i), Hz: 50})
	}
	out := q.Drain()
	if len(out) != 5 {
		t.Fatalf("drained %d samples; want 5", len(out))
	}
	for i, s := range out {
		if s.Time() != float64(i) {
			t.Fatalf("sample %d out of order: t=%v", i, s.Time())
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue not empty after drain: %d", q.Len())
	}
}

func TestQueue_DropOldestOnOverflow(t *testing.T) {
	q := NewQueue(4)
	for i := 0; i < 7; i++ {
		ok := q.Push(Frequency{T: float64(i), Hz: 50})
		if i < 4 && !ok {
			t.Fatalf("push %d evicted below capacity", i)
		}
		if i >= 4 && ok {
			t.Fatalf("push %d did not evict at capacity", i)
		}
	}
	out := q.Drain()
	if len(out) != 4 {
		t.Fatalf("drained %d; want capacity 4", len(out))
	}
	// newest 4 survive: t=3..6
	if out[0].Time() != 3 || out[3].Time() != 6 {
		t.Fatalf("wrong survivors: first t=%v last t=%v", out[0].Time(), out[3].Time())
	}
	st := q.Stats()
	if st.Pushed != 7 || st.Dropped != 3 || st.Drained != 4 {
		t.Fatalf("stats = %+v; want pushed=7 dropped=3 drained=4", st)
	}
}

func TestQueue_DefaultCapacity(t *testing.T) {
	q := NewQueue(0)
	for i := 0; i < DefaultQueueCapacity+1; i++ {
		q.Push(Frequency{T: float64(i)})
	}
	if got := q.Len(); got != DefaultQueueCapacity {
		t.Fatalf("len = %d; want %d", got, DefaultQueueCapacity)
	}
}

func TestQueue_ConcurrentPushDrain(t *testing.T) {
	q := NewQueue(64)
	const producers = 4
	const perProducer = 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Frequency{T: float64(base*perProducer + i)})
			}
		}(p)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			q.Drain()
			st := q.Stats()
			if st.Pushed == producers*perProducer && st.Drained+st.Dropped == st.Pushed {
				return
			}
		}
	}()
	wg.Wait()
	<-done

	st := q.Stats()
	if st.Pushed != producers*perProducer {
		t.Fatalf("pushed = %d; want %d", st.Pushed, producers*perProducer)
	}
	if st.Drained+st.Dropped != st.Pushed {
		t.Fatalf("drained(%d)+dropped(%d) != pushed(%d)", st.Drained, st.Dropped, st.Pushed)
	}
}

func TestQueue_StreamIDsAreUnique(t *testing.T) {
	a, b := NewQueue(1), NewQueue(1)
	if a.StreamID() == "" || a.StreamID() == b.StreamID() {
		t.Fatalf("stream ids not unique: %q vs %q", a.StreamID(), b.StreamID())
	}
}
