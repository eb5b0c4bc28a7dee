package labelring

import (
	"golang.org/x/exp/constraints"
)

// Element is a labeled ring element.
//
// Links and labels are managed by the owning Ring. Rewriting either
// from outside the package would break the ring's label invariant,
// so only read access is exported.
type Element[V any, L constraints.Unsigned] struct {
	Value      V
	label      L
	next, prev *Element[V, L]
}

// Label returns the element's current label.
//
// Labels are meaningful only relative to the sentinel's label and may
// be rewritten by insertions elsewhere in the ring. Compare elements
// with [Ring.Less] instead of comparing labels directly.
func (e *Element[V, L]) Label() L {
	return e.label
}

// Next returns the next element in the ring.
func (e *Element[V, L]) Next() *Element[V, L] {
	return e.next
}

// Prev returns the previous element in the ring.
func (e *Element[V, L]) Prev() *Element[V, L] {
	return e.prev
}

// link inserts s after e.
func (e *Element[V, L]) link(s *Element[V, L]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// unlink removes e from its ring.
func (e *Element[V, L]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = e
	e.prev = e
}
