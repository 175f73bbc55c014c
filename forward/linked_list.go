package forward

import (
	"iter"

	"github.com/pkg/errors"
)

// Contract violations panic with one of these values. The container does
// not try to recover from them; correct callers never see them.
var (
	ErrEmpty       = errors.New("forward: list is empty")
	ErrEndPosition = errors.New("forward: position is past-the-end")
	ErrNoSuccessor = errors.New("forward: no element after position")
	ErrNotElement  = errors.New("forward: cursor does not reference an element")
)

// region Node

// node is one cell of the chain. Each link exclusively owns its successor;
// the sentinel head is owned inline by the list and never holds a value.
type node[T any] struct {
	value T
	next  *node[T]
}

// endregion

// region LinkedList

// LinkedList is a singly linked list with O(1) front insertion/removal and
// position-relative InsertAfter/EraseAfter. The zero value is an empty list
// ready to use. A list exclusively owns every node in its chain; cursors
// only reference them.
//
// WARN: NOT CONCURRENT SAFE. Share across goroutines only under external
// locking.
type LinkedList[T any] struct {
	head node[T] // sentinel; head.next is the first element
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// NewLinkedListOf builds a list whose traversal order matches the order of
// values. The chain is assembled on a temporary and swapped in whole.
func NewLinkedListOf[T any](values ...T) *LinkedList[T] {
	tmp := NewLinkedList[T]()
	tail := &tmp.head
	for _, v := range values {
		tail.next = &node[T]{value: v}
		tail = tail.next
		tmp.size++
	}

	l := NewLinkedList[T]()
	l.Swap(tmp)
	return l
}

// Clone returns a deep, independent copy. No node is shared with the
// receiver.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	tmp := NewLinkedList[T]()
	tail := &tmp.head
	for n := l.head.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
		tmp.size++
	}

	cp := NewLinkedList[T]()
	cp.Swap(tmp)
	return cp
}

// Assign replaces the receiver's contents with a copy of other. The copy is
// fully built before the receiver is touched, so the receiver keeps its old
// chain unless the whole copy completes. Self-assignment is a no-op.
func (l *LinkedList[T]) Assign(other *LinkedList[T]) {
	if l == other {
		return
	}

	l.Swap(other.Clone())
}

// Swap exchanges the chains and sizes of both lists in O(1). It never fails
// and is a no-op when a list is swapped with itself.
func (l *LinkedList[T]) Swap(other *LinkedList[T]) {
	if l == other {
		return
	}

	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

func (l *LinkedList[T]) Len() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear releases the whole chain and restores the empty-list invariant.
// Links are severed cell by cell so a stale cursor cannot walk from a
// released node back into live cells.
func (l *LinkedList[T]) Clear() {
	var zero T
	for n := l.head.next; n != nil; {
		next := n.next
		n.next = nil
		n.value = zero
		n = next
	}

	l.head.next = nil
	l.size = 0
}

// Front returns the first element. The list must be non-empty.
func (l *LinkedList[T]) Front() T {
	if l.head.next == nil {
		panic(ErrEmpty)
	}

	return l.head.next.value
}

// PushFront links a new element as the new first element. The node is
// allocated before any link changes.
func (l *LinkedList[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

// PopFront unlinks and returns the first element. The list must be
// non-empty.
func (l *LinkedList[T]) PopFront() T {
	first := l.head.next
	if first == nil {
		panic(ErrEmpty)
	}

	l.head.next = first.next
	first.next = nil
	l.size--
	return first.value
}

// InsertAfter links a new element immediately after pos and returns a
// cursor at it. pos must be a position of this list: before-begin or a real
// element, never past-the-end. The node is allocated before any link
// changes, so a failed allocation leaves the list untouched.
func (l *LinkedList[T]) InsertAfter(pos Iterator[T], v T) Iterator[T] {
	if pos.n == nil {
		panic(ErrEndPosition)
	}

	n := &node[T]{value: v, next: pos.n.next}
	pos.n.next = n
	l.size++
	return Iterator[T]{n: n}
}

// EraseAfter unlinks the element immediately after pos, which must exist.
// Returns a cursor at the element now following pos, or past-the-end.
func (l *LinkedList[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.n == nil {
		panic(ErrEndPosition)
	}

	victim := pos.n.next
	if victim == nil {
		panic(ErrNoSuccessor)
	}

	pos.n.next = victim.next
	victim.next = nil
	l.size--
	return Iterator[T]{n: pos.n.next}
}

// endregion

// region Accessors

// Begin returns a cursor at the first element, or past-the-end when the
// list is empty.
func (l *LinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End returns the past-the-end cursor. Never dereferenceable.
func (l *LinkedList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the cursor anchored on the sentinel. It is never
// dereferenceable and exists only as a position for InsertAfter/EraseAfter
// at the front.
func (l *LinkedList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head, anchor: true}
}

func (l *LinkedList[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

func (l *LinkedList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *LinkedList[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: &l.head, anchor: true}
}

// endregion

// region Traversal helpers

// ForEach calls f with each index and element in traversal order. It stops
// early when f returns false.
func (l *LinkedList[T]) ForEach(f func(i int, v T) bool) {
	i := 0
	for n := l.head.next; n != nil; n = n.next {
		if !f(i, n.value) {
			return
		}
		i++
	}
}

// Contains reports whether any element satisfies pred.
func (l *LinkedList[T]) Contains(pred func(v T) bool) bool {
	for n := l.head.next; n != nil; n = n.next {
		if pred(n.value) {
			return true
		}
	}

	return false
}

// Values yields the elements in traversal order.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// endregion
