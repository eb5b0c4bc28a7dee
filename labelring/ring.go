/*
Package labelring implements the order-maintenance problem on a circular
doubly linked ring of labeled elements.

Each element carries a fixed-width unsigned label. Labels increase
strictly in ring order when read relative to a sentinel element's label,
wrapping around the label space. Relative order of any two elements is
decided in O(1) by comparing relative labels. Insertion at an arbitrary
position assigns the midpoint of the surrounding label gap and, when a
region of the ring has grown too dense to admit a midpoint, first
redistributes the labels of the dense region. The redistribution scheme
is the classic one by Dietz and Sleator: amortized over a sequence of
insertions, each insertion rewrites O(log n) labels.

The label space must stay large relative to the element count. With the
usual 64-bit labels this is never a practical concern; narrow label
types such as uint8 exist to put the redistribution under real pressure
in tests and require the ring to stay below half the label space.
*/
package labelring

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Ring is a circular doubly linked ring of labeled elements.
//
// The zero value is an empty ring ready to use. A Ring must not be
// copied after first use.
type Ring[V any, L constraints.Unsigned] struct {
	sentinel  Element[V, L]
	relabeled uint64
	len       int
}

// Len returns the number of elements in the ring, excluding the sentinel.
func (r *Ring[V, L]) Len() int {
	return r.len
}

// Relabeled returns the total number of label rewrites performed by
// insertions so far. Amortized over n insertions it stays in O(n log n).
func (r *Ring[V, L]) Relabeled() uint64 {
	return r.relabeled
}

// Sentinel returns the sentinel element.
//
// The sentinel holds no value and anchors relative label arithmetic:
// its own label is the zero point. It is a valid insertion mark for
// inserting at the extreme front or back of the ring.
func (r *Ring[V, L]) Sentinel() *Element[V, L] {
	r.init()
	return &r.sentinel
}

// Front returns the first element of the ring or nil.
func (r *Ring[V, L]) Front() *Element[V, L] {
	if r.len == 0 {
		return nil
	}
	return r.sentinel.next
}

// Back returns the last element of the ring or nil.
func (r *Ring[V, L]) Back() *Element[V, L] {
	if r.len == 0 {
		return nil
	}
	return r.sentinel.prev
}

// Less reports whether x is ordered before y.
//
// Both labels are read relative to the sentinel's current label so that
// the comparison stays valid across the wraparound boundary.
func (r *Ring[V, L]) Less(x, y *Element[V, L]) bool {
	return x.label-r.sentinel.label < y.label-r.sentinel.label
}

// InsertAfter inserts a new element holding value immediately after at
// and returns it. The mark must be an element of this ring; the
// sentinel marks the front.
//
// The new element's label is the midpoint of the gap following at. When
// the gap has shrunk to one, the labels of the dense region after at
// are first spread evenly over the nearest sparse span. The sentinel
// participates in redistribution like any other element: moving its
// label rotates the relative zero point without disturbing order.
func (r *Ring[V, L]) InsertAfter(at *Element[V, L], value V) *Element[V, L] {
	r.init()

	if succ := at.next; succ != at {
		j := uint64(1)
		cur := succ

		// Walk forward while the span from at is too tight to hold
		// the walked elements comfortably. Reaching at again means
		// the whole ring is one dense region and the span is the
		// entire label space.
		for cur != at && uint64(cur.label-at.label) <= j*j {
			cur = cur.next
			j++
		}

		if j > 1 {
			r.spread(at, cur, j)
		}
	}

	e := &Element[V, L]{
		Value: value,
		label: at.label + r.midpoint(at),
	}

	at.link(e)
	r.len++

	return e
}

// InsertBefore inserts a new element holding value immediately before
// at and returns it. The sentinel marks the back.
func (r *Ring[V, L]) InsertBefore(at *Element[V, L], value V) *Element[V, L] {
	r.init()
	return r.InsertAfter(at.prev, value)
}

// Remove an element from the ring.
func (r *Ring[V, L]) Remove(e *Element[V, L]) {
	if e == &r.sentinel {
		panic("labelring: cannot remove the sentinel")
	}
	if e.next == nil || e.next == e {
		panic("labelring: element is not in a ring")
	}

	e.unlink()
	r.len--
}

// Do calls f on each element in ring order, starting after the
// sentinel. If f returns false, Do stops the iteration.
// f must not mutate the ring.
func (r *Ring[V, L]) Do(f func(e *Element[V, L]) bool) {
	r.init()

	for e := r.sentinel.next; e != &r.sentinel; e = e.next {
		if !f(e) {
			return
		}
	}
}

func (r *Ring[V, L]) init() {
	if r.sentinel.next == nil {
		r.sentinel.next = &r.sentinel
		r.sentinel.prev = &r.sentinel
	}
}

// spread distributes the labels of the j-1 elements strictly between
// at and end evenly across the span from at to end. A single forward
// pass rewrites the labels in place; relative order is unchanged.
func (r *Ring[V, L]) spread(at, end *Element[V, L], j uint64) {
	span := uint64(end.label - at.label) // zero stands for the full label space

	k := uint64(1)
	for e := at.next; e != end; e = e.next {
		e.label = at.label + fraction[L](span, k, j)
		k++
		r.relabeled++
	}
}

// midpoint returns half the label gap following at. A gap of zero means
// at is alone in the ring and owns the full label space.
//
// InsertAfter's scan leaves the gap at two or more, so the midpoint is
// distinct from both neighboring labels.
func (r *Ring[V, L]) midpoint(at *Element[V, L]) L {
	if g := at.next.label - at.label; g != 0 {
		return g / 2
	}
	return half[L]()
}

// fraction returns span*k/j without overflow, using a 128-bit
// intermediate product. A span of zero stands for the full label space.
func fraction[L constraints.Unsigned](span, k, j uint64) L {
	if span == 0 {
		if w := bits.Len64(uint64(^L(0))); w < 64 {
			span = 1 << w
		} else {
			// span*k is exactly k<<64.
			q, _ := bits.Div64(k, 0, j)
			return L(q)
		}
	}

	hi, lo := bits.Mul64(span, k)
	q, _ := bits.Div64(hi, lo, j)

	return L(q)
}

// half returns the midpoint of L's full label space.
func half[L constraints.Unsigned]() L {
	return ^L(0)>>1 + 1
}
