/*
Package pqueue implements a priority queue on top of a sorted set.
*/
package pqueue

import (
	"cmp"

	"github.com/mgnsk/orderlist/treap"
)

type entry[T any] struct {
	item T
	prio int64
	seq  uint64
}

// Queue is a minimum priority queue.
// Items of equal priority are popped in insertion order.
//
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	tree *treap.Tree[entry[T]]
	seq  uint64
}

// New creates an empty queue. The seed drives the randomized balancing
// of the underlying sorted set.
func New[T any](seed uint64) *Queue[T] {
	return &Queue[T]{
		tree: treap.NewFunc(seed, func(a, b entry[T]) int {
			if c := cmp.Compare(a.prio, b.prio); c != 0 {
				return c
			}
			return cmp.Compare(a.seq, b.seq)
		}),
	}
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.tree.Len()
}

// Push adds an item with the given priority.
func (q *Queue[T]) Push(item T, priority int64) {
	q.tree.Insert(entry[T]{
		item: item,
		prio: priority,
		seq:  q.seq,
	})
	q.seq++
}

// Peek returns the item with the lowest priority without removing it.
// It returns false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	e, ok := q.tree.Min()
	if !ok {
		var zero T
		return zero, false
	}

	return e.item, true
}

// Pop removes and returns the item with the lowest priority.
// It returns false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	e, ok := q.tree.Min()
	if !ok {
		var zero T
		return zero, false
	}

	q.tree.Delete(e)

	return e.item, true
}
