package int

import (
	"testing"

	"github.com/snwfog/forward.go/forward"
)

var Sum int

func BenchmarkPushFront(b *testing.B) {
	ll := forward.NewLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ll.PushFront(i)
	}
}

func BenchmarkPushPopFront(b *testing.B) {
	ll := forward.NewLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ll.PushFront(i)
		Sum += ll.PopFront()
	}
}

func BenchmarkInsertAfterFront(b *testing.B) {
	ll := forward.NewLinkedList[int]()
	pos := ll.BeforeBegin()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ll.InsertAfter(pos, i)
	}
}

func BenchmarkTraversal_10(b *testing.B) { traversal(b, 1<<10) }
func BenchmarkTraversal_13(b *testing.B) { traversal(b, 1<<13) }
func BenchmarkTraversal_16(b *testing.B) { traversal(b, 1<<16) }

func traversal(b *testing.B, n int) {
	ll := forward.NewLinkedList[int]()
	for i := 0; i < n; i++ {
		ll.PushFront(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := range ll.Values() {
			Sum += v
		}
	}
}

func BenchmarkClone_10(b *testing.B) { clone(b, 1<<10) }
func BenchmarkClone_13(b *testing.B) { clone(b, 1<<13) }

func clone(b *testing.B, n int) {
	ll := forward.NewLinkedList[int]()
	for i := 0; i < n; i++ {
		ll.PushFront(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cp := ll.Clone()
		Sum += cp.Len()
	}
}
