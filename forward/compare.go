package forward

import "cmp"

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *LinkedList[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if an.value != bn.value {
			return false
		}
		bn = bn.next
	}

	return true
}

func NotEqual[T comparable](a, b *LinkedList[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a precedes b lexicographically over their forward
// traversal sequences.
func Less[T cmp.Ordered](a, b *LinkedList[T]) bool {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if an.value != bn.value {
			return an.value < bn.value
		}
		an, bn = an.next, bn.next
	}

	return an == nil && bn != nil
}

func LessOrEqual[T cmp.Ordered](a, b *LinkedList[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *LinkedList[T]) bool {
	return Less(b, a)
}

func GreaterOrEqual[T cmp.Ordered](a, b *LinkedList[T]) bool {
	return !Less(a, b)
}

// Swap exchanges the contents of a and b in O(1).
func Swap[T any](a, b *LinkedList[T]) {
	a.Swap(b)
}
