// Package seq provides list-like sequence implementations for benchmarking.
//
// This package offers several implementations of the Sequence interface:
//   - Array: contiguous slice, elements shift on arbitrary insert/remove
//   - Linked: container/list doubly-linked chain with an element-holding cursor
//   - Gods: emirpasic/gods arraylist or doublylinkedlist behind the same contract
//
// # Preconditions (IMPORTANT)
//
// Sequences are not defensive containers. RemoveFront on an empty sequence,
// an out-of-range index, or stepping a cursor past either end panics with a
// "seq:" message. Benchmark drivers avoid these paths by construction.
//
// Sequences are not safe for concurrent use.
package seq

import "fmt"

// Sequence is an ordered, index-addressable collection.
type Sequence[T any] interface {
	// PushFront inserts v at index 0.
	PushFront(v T)

	// PushBack appends v.
	PushBack(v T)

	// InsertAt inserts v so that it ends up at index, 0 <= index <= Len().
	InsertAt(index int, v T)

	// RemoveFront removes and returns the element at index 0.
	// Panics if the sequence is empty.
	RemoveFront() T

	// RemoveAt removes and returns the element at index.
	RemoveAt(index int) T

	// At returns the element at index.
	At(index int) T

	Len() int
	Empty() bool

	// Clear removes all elements.
	Clear()

	// Values returns a copy of the elements in order.
	Values() []T

	// Cursor returns a cursor positioned before the element at index,
	// 0 <= index <= Len().
	//
	// The cursor is invalidated by any mutation not made through it.
	Cursor(index int) Cursor[T]
}

// Cursor is a movable position between two elements of a Sequence.
//
// A cursor at index i sits between element i-1 and element i.
type Cursor[T any] interface {
	// Insert places v at the cursor index and moves the cursor past it.
	Insert(v T)

	// HasNext reports whether an element follows the cursor.
	HasNext() bool

	// Next returns the element after the cursor and advances past it.
	Next() T

	// HasPrev reports whether an element precedes the cursor.
	HasPrev() bool

	// Prev steps back over the preceding element and returns it.
	Prev() T

	// RemoveNext removes and returns the element after the cursor.
	// The cursor index is unchanged and now precedes the removed element's
	// successor.
	RemoveNext() T

	// Index returns the number of elements before the cursor.
	Index() int
}

const (
	msgEmpty  = "seq: RemoveFront on empty sequence"
	msgNoNext = "seq: cursor has no next element"
	msgNoPrev = "seq: cursor has no previous element"
)

func checkIndex(index, n int) {
	if index < 0 || index >= n {
		panic(fmt.Sprintf("seq: index %d out of range [0, %d)", index, n))
	}
}

func checkPosition(index, n int) {
	if index < 0 || index > n {
		panic(fmt.Sprintf("seq: position %d out of range [0, %d]", index, n))
	}
}
