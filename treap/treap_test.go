package treap_test

import (
	"slices"
	"testing"

	. "github.com/mgnsk/orderlist/internal/testing"
	"github.com/mgnsk/orderlist/treap"
	"github.com/mgnsk/orderlist/xrand"
)

func TestInsert(t *testing.T) {
	tree := treap.New[int](1)

	True(t, tree.Insert(2))
	True(t, tree.Insert(1))
	True(t, tree.Insert(3))
	True(t, !tree.Insert(2))

	Equal(t, tree.Len(), 3)
	True(t, tree.Contains(1))
	True(t, !tree.Contains(4))
	Equal(t, keys(tree), []int{1, 2, 3})
}

func TestDelete(t *testing.T) {
	tree := treap.New[int](1)

	for i := 0; i < 10; i++ {
		tree.Insert(i)
	}

	True(t, tree.Delete(5))
	True(t, !tree.Delete(5))
	True(t, tree.Delete(0))
	True(t, tree.Delete(9))

	Equal(t, tree.Len(), 7)
	Equal(t, keys(tree), []int{1, 2, 3, 4, 6, 7, 8})
}

func TestMinMax(t *testing.T) {
	tree := treap.New[string](1)

	_, ok := tree.Min()
	True(t, !ok)
	_, ok = tree.Max()
	True(t, !ok)

	tree.Insert("b")
	tree.Insert("a")
	tree.Insert("c")

	min, ok := tree.Min()
	True(t, ok)
	Equal(t, min, "a")

	max, ok := tree.Max()
	True(t, ok)
	Equal(t, max, "c")
}

func TestRangeStopsEarly(t *testing.T) {
	tree := treap.New[int](1)
	for i := 0; i < 10; i++ {
		tree.Insert(i)
	}

	var seen []int
	tree.Range(func(key int) bool {
		seen = append(seen, key)
		return len(seen) < 3
	})

	Equal(t, seen, []int{0, 1, 2})
}

func TestNewFunc(t *testing.T) {
	// Descending order.
	tree := treap.NewFunc(1, func(a, b int) int { return b - a })

	tree.Insert(1)
	tree.Insert(3)
	tree.Insert(2)

	Equal(t, keys(tree), []int{3, 2, 1})
}

func TestRandomizedAgainstMap(t *testing.T) {
	tree := treap.New[uint64](7)
	oracle := map[uint64]bool{}
	rnd := xrand.NewXoshiro256(7)

	for i := 0; i < 10000; i++ {
		key := rnd.Uint64n(500)

		if rnd.Uint64n(3) == 0 {
			Equal(t, tree.Delete(key), oracle[key])
			delete(oracle, key)
		} else {
			Equal(t, tree.Insert(key), !oracle[key])
			oracle[key] = true
		}
	}

	Equal(t, tree.Len(), len(oracle))

	want := make([]uint64, 0, len(oracle))
	for key := range oracle {
		want = append(want, key)
	}
	slices.Sort(want)

	Equal(t, keys(tree), want)
}

func keys[K comparable](tree *treap.Tree[K]) []K {
	var ks []K
	tree.Range(func(key K) bool {
		ks = append(ks, key)
		return true
	})

	return ks
}
