/*
Package orderlist implements an order-maintenance list over a set of
unique items: a total order supporting insertion at an arbitrary
position in amortized O(log n) label rewrites and order comparison
between any two items in O(1).
*/
package orderlist

import (
	"github.com/mgnsk/orderlist/labelring"
)

// Elem is the handle to an item's position in a list.
type Elem[T comparable] = labelring.Element[T, uint64]

// List maintains a total order over a set of unique items.
//
// A List is not safe for concurrent use.
type List[T comparable] struct {
	elems map[T]*Elem[T]
	ring  labelring.Ring[T, uint64]
}

// New creates a list containing the first item.
func New[T comparable](first T) *List[T] {
	l := &List[T]{
		elems: make(map[T]*Elem[T]),
	}
	l.elems[first] = l.ring.InsertAfter(l.ring.Sentinel(), first)

	return l
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	return l.ring.Len()
}

// Contains returns whether item is a member of the list.
func (l *List[T]) Contains(item T) bool {
	_, ok := l.elems[item]
	return ok
}

// Before reports whether x is ordered before y.
// It returns false when either item is not a member.
func (l *List[T]) Before(x, y T) bool {
	ex, ok := l.elems[x]
	if !ok {
		return false
	}

	ey, ok := l.elems[y]
	if !ok {
		return false
	}

	return l.ring.Less(ex, ey)
}

// InsertAfter inserts item immediately after mark.
//
// It returns ErrNotMember when mark is not a member. Inserting an item
// that is already a member is a no-op.
func (l *List[T]) InsertAfter(mark, item T) error {
	e, ok := l.elems[mark]
	if !ok {
		return ErrNotMember
	}

	l.insert(e, item)

	return nil
}

// InsertBefore inserts item immediately before mark.
//
// It returns ErrNotMember when mark is not a member. Inserting an item
// that is already a member is a no-op.
func (l *List[T]) InsertBefore(mark, item T) error {
	e, ok := l.elems[mark]
	if !ok {
		return ErrNotMember
	}

	l.insert(e.Prev(), item)

	return nil
}

// PushFront inserts item before all current members.
// Inserting an item that is already a member is a no-op.
func (l *List[T]) PushFront(item T) {
	l.insert(l.ring.Sentinel(), item)
}

// PushBack inserts item after all current members.
// Inserting an item that is already a member is a no-op.
func (l *List[T]) PushBack(item T) {
	l.insert(l.ring.Sentinel().Prev(), item)
}

// Remove an item from the list.
// It returns false when item is not a member.
func (l *List[T]) Remove(item T) bool {
	e, ok := l.elems[item]
	if !ok {
		return false
	}

	delete(l.elems, item)
	l.ring.Remove(e)

	return true
}

// Resolve returns the position handle for item.
//
// The handle stays valid until the item is removed and can be passed to
// InsertAfterElem to skip the membership lookup.
func (l *List[T]) Resolve(item T) (*Elem[T], bool) {
	e, ok := l.elems[item]
	return e, ok
}

// InsertAfterElem inserts item immediately after the mark handle,
// which must have been obtained from this list's Resolve.
// Inserting an item that is already a member is a no-op.
func (l *List[T]) InsertAfterElem(mark *Elem[T], item T) {
	l.insert(mark, item)
}

// Range calls f on each item in list order. If f returns false, Range
// stops the iteration.
//
// Range reflects the live structure: mutating the list while a Range is
// in progress has undefined ordering effects.
func (l *List[T]) Range(f func(item T) bool) {
	l.ring.Do(func(e *Elem[T]) bool {
		return f(e.Value)
	})
}

// Items returns all items in list order.
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.Len())
	l.Range(func(item T) bool {
		items = append(items, item)
		return true
	})

	return items
}

// Relabeled returns the total number of label rewrites performed by
// insertions so far.
func (l *List[T]) Relabeled() uint64 {
	return l.ring.Relabeled()
}

func (l *List[T]) insert(at *Elem[T], item T) {
	if _, ok := l.elems[item]; ok {
		// Members are unique.
		return
	}

	l.elems[item] = l.ring.InsertAfter(at, item)
}
