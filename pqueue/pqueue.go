// Package pqueue provides a generic min-priority queue used by the search
// algorithms in pathfind.
//
// The queue is a binary heap over (priority, insertion sequence), so the entry
// with the smallest priority is extracted first and equal priorities come out
// in insertion order (FIFO). There is no uniqueness constraint: the same item
// may be inserted many times with different priorities. Consumers that need
// decrease-key semantics insert a fresh entry and ignore stale ones when they
// are extracted ("lazy decrease-key").
//
// Complexity:
//
//   - Insert:     O(log n)
//   - ExtractMin: O(log n)
//   - IsEmpty, Len, Peek: O(1)
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is the panic value of ExtractMin and Peek on an empty queue.
// Extracting from an empty queue is a caller bug, not a recoverable condition.
var ErrEmptyQueue = errors.New("pqueue: extract from empty queue")

// Queue is a min-priority queue of T. The zero value is not usable; call New.
type Queue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewWithCapacity returns an empty queue with room for n entries.
func NewWithCapacity[T any](n int) *Queue[T] {
	return &Queue[T]{h: make(entryHeap[T], 0, n)}
}

// Insert adds item with the given priority.
func (q *Queue[T]) Insert(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// ExtractMin removes and returns the entry with the smallest priority.
// Ties are broken by insertion order. Panics with ErrEmptyQueue if the queue
// is empty; check IsEmpty first.
func (q *Queue[T]) ExtractMin() (T, float64) {
	if len(q.h) == 0 {
		panic(ErrEmptyQueue)
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority
}

// Peek returns the entry ExtractMin would return, without removing it.
// Panics with ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Peek() (T, float64) {
	if len(q.h) == 0 {
		panic(ErrEmptyQueue)
	}

	return q.h[0].item, q.h[0].priority
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of entries, stale ones included.
func (q *Queue[T]) Len() int { return len(q.h) }

// entry is one (item, priority) pair; seq records insertion order.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq) ascending.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop reference held by the backing array
	*h = old[:n-1]

	return e
}
