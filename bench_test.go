package orderlist_test

import (
	"testing"

	"github.com/mgnsk/orderlist"
	"github.com/mgnsk/orderlist/xrand"
)

func BenchmarkPushBack(b *testing.B) {
	b.StopTimer()

	l := orderlist.New(0)

	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		l.PushBack(i + 1)
	}
}

func BenchmarkPushFront(b *testing.B) {
	b.StopTimer()

	l := orderlist.New(0)

	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		l.PushFront(i + 1)
	}
}

func BenchmarkInsertAfterDensestPoint(b *testing.B) {
	b.StopTimer()

	l := orderlist.New(0)
	mark, _ := l.Resolve(0)

	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		l.InsertAfterElem(mark, i+1)
	}
}

func BenchmarkInsertAfterRandom(b *testing.B) {
	b.StopTimer()

	l := orderlist.New(0)
	members := []int{0}
	rnd := xrand.NewXoshiro256(1)

	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		mark := members[rnd.Intn(len(members))]
		if err := l.InsertAfter(mark, i+1); err != nil {
			b.Fatal(err)
		}
		members = append(members, i+1)
	}
}

func BenchmarkBefore(b *testing.B) {
	b.StopTimer()

	l := orderlist.New(0)
	for i := 1; i < 10000; i++ {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		_ = l.Before(i%10000, (i+5000)%10000)
	}
}
