// File: queue.go
// Role: Deterministic min-priority queue for the relaxation engine, built on
// container/heap with lazy decrease-key (stale entries are skipped on pop
// rather than updated in place) and a (cost, id) tie-break so repeated runs
// over the same input settle points in the same order.
package core

import "container/heap"

// queueItem is one entry in the relaxation priority queue: a candidate
// point and the cost it would be settled at.
type queueItem struct {
	id   PointID
	cost Cost
}

// pointQueue is a min-heap of queueItem ordered by (cost, id) ascending —
// lower cost first, ties broken by lower id first. This tie-break is what
// guarantees byte-identical computed-info across repeated runs of the same
// inputs, since no priority queue implementation is contractually stable.
type pointQueue []queueItem

func (q pointQueue) Len() int { return len(q) }

func (q pointQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}

	return q[i].id < q[j].id
}

func (q pointQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pointQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }

func (q *pointQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// newPointQueue returns an empty queue with the given capacity reserved.
func newPointQueue(capacity int) *pointQueue {
	q := make(pointQueue, 0, capacity)

	return &q
}

func (q *pointQueue) push(id PointID, cost Cost) {
	heap.Push(q, queueItem{id: id, cost: cost})
}

// popMin removes and returns the lowest-(cost, id) item, or ok=false if the
// queue is empty.
func (q *pointQueue) popMin() (queueItem, bool) {
	if q.Len() == 0 {
		return queueItem{}, false
	}

	return heap.Pop(q).(queueItem), true
}
