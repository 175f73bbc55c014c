package forward

// A cursor is in exactly one of three states, each with its own allowed
// operations:
//
//   - before-begin: anchored on the sentinel; valid only as a position for
//     InsertAfter/EraseAfter, never dereferenceable
//   - element: references a real cell; dereferenceable and advanceable
//   - past-the-end: nil cell; only comparable
//
// Cursors never own nodes. A cursor dangles once the node it references, or
// any node between the sentinel and it, is erased, or once the owning list
// is cleared, reassigned or dropped.

// region Iterator

// Iterator is a forward cursor that may mutate the element it references.
type Iterator[T any] struct {
	n      *node[T]
	anchor bool
}

// Advance moves the cursor to the next cell in place and returns the
// receiver. The cursor must not be past-the-end.
func (it *Iterator[T]) Advance() *Iterator[T] {
	if it.n == nil {
		panic(ErrEndPosition)
	}

	it.n = it.n.next
	it.anchor = false
	return it
}

// Next returns the cursor one step forward, leaving the receiver where it
// is. Same precondition as Advance.
func (it Iterator[T]) Next() Iterator[T] {
	next := it
	next.Advance()
	return next
}

// Ref returns a pointer to the current element, usable for in-place
// mutation and member access. The cursor must reference a real element.
func (it Iterator[T]) Ref() *T {
	if it.n == nil || it.anchor {
		panic(ErrNotElement)
	}

	return &it.n.value
}

// Value returns a copy of the current element. Same precondition as Ref.
func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n, anchor: it.anchor}
}

// Equal reports whether both cursors reference the same cell. Two
// past-the-end cursors are always equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

// endregion

// region ConstIterator

// ConstIterator is a forward cursor that can read but never mutate the
// element it references. A mutable and a read-only cursor at the same
// position compare equal through Const.
type ConstIterator[T any] struct {
	n      *node[T]
	anchor bool
}

func (it *ConstIterator[T]) Advance() *ConstIterator[T] {
	if it.n == nil {
		panic(ErrEndPosition)
	}

	it.n = it.n.next
	it.anchor = false
	return it
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	next := it
	next.Advance()
	return next
}

// Value returns a copy of the current element. The cursor must reference a
// real element. There is deliberately no Ref counterpart here.
func (it ConstIterator[T]) Value() T {
	if it.n == nil || it.anchor {
		panic(ErrNotElement)
	}

	return it.n.value
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.n == other.n
}

// endregion
