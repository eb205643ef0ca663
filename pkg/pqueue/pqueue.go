// Package pqueue implements the generic min-priority queue shared by the
// SDF-L engine and the rule-based flood fill. It follows the
// container/heap.Interface shape katalvlaran-lvlath's nodePQ uses for
// Dijkstra, rather than the hand-rolled sift-up/down binary heap the
// original C DijkstraQueue/FFPriorityQueue implementations use.
package pqueue

import "container/heap"

// Item is one entry: a cell coordinate, its priority (lower pops first)
// and an arbitrary payload the caller attaches (e.g. the [2]int32
// displacement pkg/sdf attaches; pkg/flood attaches none).
type Item struct {
	X, Y     int
	Priority float64
	Payload  any

	index int
}

type innerQueue []*Item

func (q innerQueue) Len() int { return len(q) }

func (q innerQueue) Less(i, j int) bool { return q[i].Priority < q[j].Priority }

func (q innerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *innerQueue) Push(x any) {
	it := x.(*Item)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *innerQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]
	return it
}

// Queue is a min-priority queue of Items, safe to use from a single
// goroutine (every consumer in this module drains one per engine).
type Queue struct {
	inner innerQueue
}

// New returns an empty queue with capacity hint cap.
func New(capHint int) *Queue {
	q := &Queue{inner: make(innerQueue, 0, capHint)}
	heap.Init(&q.inner)
	return q
}

// Len reports the number of queued items.
func (q *Queue) Len() int { return q.inner.Len() }

// Push inserts item, preserving heap order.
func (q *Queue) Push(it *Item) { heap.Push(&q.inner, it) }

// Pop removes and returns the lowest-priority item, or nil if empty.
func (q *Queue) Pop() *Item {
	if q.inner.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.inner).(*Item)
}
