/*
Package orderedset implements a set that remembers insertion order.
*/
package orderedset

type element[T comparable] struct {
	value      T
	next, prev *element[T]
}

func (e *element[T]) link(s *element[T]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

func (e *element[T]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = e
	e.prev = e
}

// OrderedSet is a set of unique items iterable in insertion order.
// It is a thin wrapper over a hash map and a circular linked chain.
//
// An OrderedSet is not safe for concurrent use.
type OrderedSet[T comparable] struct {
	elems map[T]*element[T]
	tail  *element[T]
}

// New creates a set containing items, in order.
func New[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		elems: make(map[T]*element[T], len(items)),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Len returns the number of items in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.elems)
}

// Contains returns whether item is a member of the set.
func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.elems[item]
	return ok
}

// Add inserts item at the back of the set.
// It reports whether the set was modified.
func (s *OrderedSet[T]) Add(item T) bool {
	if _, ok := s.elems[item]; ok {
		return false
	}

	e := &element[T]{value: item}
	e.next = e
	e.prev = e

	if s.tail != nil {
		s.tail.link(e)
	}
	s.tail = e
	s.elems[item] = e

	return true
}

// Remove an item from the set.
// It returns false when item is not a member.
func (s *OrderedSet[T]) Remove(item T) bool {
	e, ok := s.elems[item]
	if !ok {
		return false
	}

	if e == s.tail {
		if len(s.elems) == 1 {
			s.tail = nil
		} else {
			s.tail = e.prev
		}
	}

	e.unlink()
	delete(s.elems, item)

	return true
}

// Range calls f on each item in insertion order. If f returns false,
// Range stops the iteration. f must not mutate the set.
func (s *OrderedSet[T]) Range(f func(item T) bool) {
	if s.tail == nil {
		return
	}

	front := s.tail.next
	if !f(front.value) {
		return
	}

	for e := front.next; e != front; e = e.next {
		if !f(e.value) {
			return
		}
	}
}

// Items returns all items in insertion order.
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, s.Len())
	s.Range(func(item T) bool {
		items = append(items, item)
		return true
	})

	return items
}
