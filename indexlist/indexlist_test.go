package indexlist_test

import (
	"testing"

	"github.com/mgnsk/orderlist/indexlist"
	. "github.com/mgnsk/orderlist/internal/testing"
)

func TestAdd(t *testing.T) {
	l := indexlist.New[string]()

	True(t, l.Add("a"))
	True(t, l.Add("b"))
	True(t, !l.Add("a"))

	Equal(t, l.Len(), 2)
	Equal(t, l.Items(), []string{"a", "b"})
	Equal(t, l.At(1), "b")

	i, ok := l.Index("b")
	True(t, ok)
	Equal(t, i, 1)

	_, ok = l.Index("c")
	True(t, !ok)
}

func TestInsert(t *testing.T) {
	t.Run("at the front", func(t *testing.T) {
		l := indexlist.New("b", "c")

		True(t, l.Insert(0, "a"))
		Equal(t, l.Items(), []string{"a", "b", "c"})

		expectConsistentIndex(t, l)
	})

	t.Run("in the middle", func(t *testing.T) {
		l := indexlist.New("a", "c")

		True(t, l.Insert(1, "b"))
		Equal(t, l.Items(), []string{"a", "b", "c"})

		expectConsistentIndex(t, l)
	})

	t.Run("at the back", func(t *testing.T) {
		l := indexlist.New("a")

		True(t, l.Insert(1, "b"))
		Equal(t, l.Items(), []string{"a", "b"})

		expectConsistentIndex(t, l)
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		l := indexlist.New("a", "b")

		True(t, !l.Insert(0, "b"))
		Equal(t, l.Items(), []string{"a", "b"})
	})

	t.Run("position out of range", func(t *testing.T) {
		defer func() {
			True(t, recover() != nil)
		}()

		indexlist.New("a").Insert(2, "b")
	})
}

func TestRemove(t *testing.T) {
	l := indexlist.New("a", "b", "c", "d")

	True(t, l.Remove("b"))
	True(t, !l.Remove("b"))

	Equal(t, l.Items(), []string{"a", "c", "d"})
	expectConsistentIndex(t, l)

	True(t, l.Remove("d"))
	Equal(t, l.Items(), []string{"a", "c"})
	expectConsistentIndex(t, l)
}

func TestRangeStopsEarly(t *testing.T) {
	l := indexlist.New(1, 2, 3)

	var seen []int
	l.Range(func(item int) bool {
		seen = append(seen, item)
		return false
	})

	Equal(t, seen, []int{1})
}

func expectConsistentIndex[T comparable](t *testing.T, l *indexlist.IndexList[T]) {
	t.Helper()

	for i, item := range l.Items() {
		j, ok := l.Index(item)
		True(t, ok)
		Equal(t, j, i)
		Equal(t, l.At(i), item)
	}
}
