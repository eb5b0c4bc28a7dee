/*
Package treap implements a randomized balanced search tree.

A treap keeps its keys in search-tree order and a random priority per
node in heap order. The random priorities balance the tree in
expectation, giving O(log n) inserts, deletes and lookups without
explicit rebalancing rules.
*/
package treap

import (
	"cmp"

	"github.com/mgnsk/orderlist/xrand"
)

type node[K any] struct {
	key         K
	priority    uint64
	left, right *node[K]
}

// Tree is a treap-ordered set of keys.
//
// A Tree is not safe for concurrent use.
type Tree[K any] struct {
	root    *node[K]
	compare func(a, b K) int
	rnd     *xrand.Xoshiro256
	len     int
}

// New creates an empty tree over naturally ordered keys.
// Node priorities are drawn from a generator seeded with seed.
func New[K cmp.Ordered](seed uint64) *Tree[K] {
	return NewFunc[K](seed, cmp.Compare[K])
}

// NewFunc creates an empty tree ordered by the compare function.
func NewFunc[K any](seed uint64, compare func(a, b K) int) *Tree[K] {
	return &Tree[K]{
		compare: compare,
		rnd:     xrand.NewXoshiro256(seed),
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.len
}

// Contains returns whether key is a member of the tree.
func (t *Tree[K]) Contains(key K) bool {
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Insert adds key to the tree.
// It reports whether the tree was modified.
func (t *Tree[K]) Insert(key K) bool {
	root, added := t.insert(t.root, key)
	t.root = root

	if added {
		t.len++
	}

	return added
}

// Delete removes key from the tree.
// It returns false when key is not a member.
func (t *Tree[K]) Delete(key K) bool {
	root, removed := t.delete(t.root, key)
	t.root = root

	if removed {
		t.len--
	}

	return removed
}

// Min returns the smallest key in the tree.
// It returns false when the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, true
}

// Max returns the largest key in the tree.
// It returns false when the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// Range calls f on each key in ascending order. If f returns false,
// Range stops the iteration. f must not mutate the tree.
func (t *Tree[K]) Range(f func(key K) bool) {
	inorder(t.root, f)
}

func (t *Tree[K]) insert(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return &node[K]{key: key, priority: t.rnd.Uint64()}, true
	}

	var added bool

	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, added = t.insert(n.left, key)
		if n.left.priority < n.priority {
			n = rotateRight(n)
		}

	case c > 0:
		n.right, added = t.insert(n.right, key)
		if n.right.priority < n.priority {
			n = rotateLeft(n)
		}
	}

	return n, added
}

func (t *Tree[K]) delete(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool

	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, removed = t.delete(n.left, key)
	case c > 0:
		n.right, removed = t.delete(n.right, key)
	default:
		return dropRoot(n), true
	}

	return n, removed
}

// dropRoot removes n by rotating it down below its lower-priority
// child until it becomes a leaf.
func dropRoot[K any](n *node[K]) *node[K] {
	switch {
	case n.left == nil:
		return n.right

	case n.right == nil:
		return n.left

	case n.left.priority < n.right.priority:
		n = rotateRight(n)
		n.right = dropRoot(n.right)

	default:
		n = rotateLeft(n)
		n.left = dropRoot(n.left)
	}

	return n
}

func rotateLeft[K any](n *node[K]) *node[K] {
	r := n.right
	n.right = r.left
	r.left = n

	return r
}

func rotateRight[K any](n *node[K]) *node[K] {
	l := n.left
	n.left = l.right
	l.right = n

	return l
}

func inorder[K any](n *node[K], f func(key K) bool) bool {
	if n == nil {
		return true
	}

	if !inorder(n.left, f) {
		return false
	}

	if !f(n.key) {
		return false
	}

	return inorder(n.right, f)
}
