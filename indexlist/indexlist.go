/*
Package indexlist implements a list of unique items with O(1)
membership testing and position-based access.
*/
package indexlist

// IndexList is a list of unique items addressable by position.
// It combines a hash map with a flat array: membership, index lookup
// and positional access are O(1), while insertion and removal at
// arbitrary positions shift the tail and reindex in O(n).
//
// An IndexList is not safe for concurrent use.
type IndexList[T comparable] struct {
	index map[T]int
	items []T
}

// New creates a list containing items, in order.
func New[T comparable](items ...T) *IndexList[T] {
	l := &IndexList[T]{
		index: make(map[T]int, len(items)),
		items: make([]T, 0, len(items)),
	}

	for _, item := range items {
		l.Add(item)
	}

	return l
}

// Len returns the number of items in the list.
func (l *IndexList[T]) Len() int {
	return len(l.items)
}

// Contains returns whether item is a member of the list.
func (l *IndexList[T]) Contains(item T) bool {
	_, ok := l.index[item]
	return ok
}

// At returns the item at position i.
// It panics when i is out of range.
func (l *IndexList[T]) At(i int) T {
	return l.items[i]
}

// Index returns the position of item.
// It returns false when item is not a member.
func (l *IndexList[T]) Index(item T) (int, bool) {
	i, ok := l.index[item]
	return i, ok
}

// Add appends item to the list.
// It reports whether the list was modified.
func (l *IndexList[T]) Add(item T) bool {
	if _, ok := l.index[item]; ok {
		return false
	}

	l.index[item] = len(l.items)
	l.items = append(l.items, item)

	return true
}

// Insert inserts item at position i, shifting later items back.
// It reports whether the list was modified. Valid positions run from 0
// through Len inclusive; Insert panics outside that range.
func (l *IndexList[T]) Insert(i int, item T) bool {
	if i < 0 || i > len(l.items) {
		panic("indexlist: insert position out of range")
	}

	if _, ok := l.index[item]; ok {
		return false
	}

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item

	l.index[item] = i
	for j := i + 1; j < len(l.items); j++ {
		l.index[l.items[j]] = j
	}

	return true
}

// Remove an item from the list, shifting later items forward.
// It returns false when item is not a member.
func (l *IndexList[T]) Remove(item T) bool {
	i, ok := l.index[item]
	if !ok {
		return false
	}

	copy(l.items[i:], l.items[i+1:])
	l.items = l.items[:len(l.items)-1]

	delete(l.index, item)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j]] = j
	}

	return true
}

// Range calls f on each item in list order. If f returns false, Range
// stops the iteration. f must not mutate the list.
func (l *IndexList[T]) Range(f func(item T) bool) {
	for _, item := range l.items {
		if !f(item) {
			return
		}
	}
}

// Items returns a copy of the items in list order.
func (l *IndexList[T]) Items() []T {
	items := make([]T, len(l.items))
	copy(items, l.items)

	return items
}
