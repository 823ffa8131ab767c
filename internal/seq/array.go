package seq

import "slices"

// Array is a Sequence backed by a growable slice.
//
// Appends are amortized O(1). PushFront, InsertAt, RemoveFront and RemoveAt
// shift every following element, so they cost O(n).
type Array[T any] struct {
	items []T
}

// NewArray creates an empty Array with room for capacity elements.
func NewArray[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{
		items: make([]T, 0, capacity),
	}
}

// PushFront inserts v at index 0, shifting all elements up by one.
func (a *Array[T]) PushFront(v T) {
	a.items = slices.Insert(a.items, 0, v)
}

// PushBack appends v.
func (a *Array[T]) PushBack(v T) {
	a.items = append(a.items, v)
}

// InsertAt inserts v at index.
func (a *Array[T]) InsertAt(index int, v T) {
	checkPosition(index, len(a.items))
	a.items = slices.Insert(a.items, index, v)
}

// RemoveFront removes and returns the first element.
func (a *Array[T]) RemoveFront() T {
	if len(a.items) == 0 {
		panic(msgEmpty)
	}
	return a.RemoveAt(0)
}

// RemoveAt removes and returns the element at index.
func (a *Array[T]) RemoveAt(index int) T {
	checkIndex(index, len(a.items))
	v := a.items[index]
	a.items = slices.Delete(a.items, index, index+1)
	return v
}

// At returns the element at index.
func (a *Array[T]) At(index int) T {
	checkIndex(index, len(a.items))
	return a.items[index]
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Empty reports whether the sequence has no elements.
func (a *Array[T]) Empty() bool {
	return len(a.items) == 0
}

// Clear removes all elements but keeps the backing array.
func (a *Array[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
}

// Values returns a copy of the elements.
func (a *Array[T]) Values() []T {
	return slices.Clone(a.items)
}

// Cursor returns an index-tracking cursor at index.
func (a *Array[T]) Cursor(index int) Cursor[T] {
	return newIndexCursor[T](a, index)
}
