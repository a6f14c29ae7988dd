package solver

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	if !q.Empty() {
		t.Fatal("new queue should be empty")
	}
	for i := uint64(0); i < 10; i++ {
		q.Enqueue(i * 7)
	}
	if q.Len() != 10 {
		t.Fatalf("Len = %d, want 10", q.Len())
	}
	for i := uint64(0); i < 10; i++ {
		if got := q.Dequeue(); got != i*7 {
			t.Fatalf("Dequeue = %d, want %d", got, i*7)
		}
	}
	if !q.Empty() {
		t.Fatal("drained queue should be empty")
	}
}

func TestQueueGrowth(t *testing.T) {
	q := NewQueue()
	const n = 100000
	for i := uint64(0); i < n; i++ {
		q.Enqueue(i)
	}
	for i := uint64(0); i < n; i++ {
		if got := q.Dequeue(); got != i {
			t.Fatalf("Dequeue = %d, want %d", got, i)
		}
	}
}

// TestQueueInterleaved drives the ring buffer through wrap-around: the head
// advances past the start while new codes keep arriving.
func TestQueueInterleaved(t *testing.T) {
	q := NewQueue()
	next := uint64(0)
	want := uint64(0)
	for round := 0; round < 2000; round++ {
		for i := 0; i < 3; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < 2; i++ {
			if got := q.Dequeue(); got != want {
				t.Fatalf("Dequeue = %d, want %d", got, want)
			}
			want++
		}
	}
	for !q.Empty() {
		if got := q.Dequeue(); got != want {
			t.Fatalf("Dequeue = %d, want %d", got, want)
		}
		want++
	}
	if want != next {
		t.Fatalf("drained %d codes, want %d", want, next)
	}
}
