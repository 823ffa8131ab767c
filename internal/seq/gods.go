package seq

import (
	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Gods adapts an emirpasic/gods list to the Sequence interface.
//
// The gods lists store interface{} values, so every element is boxed on
// insert and type-asserted on read. Neither list exposes element handles,
// so Cursor falls back to index bookkeeping and each cursor step pays the
// library's index-access cost.
type Gods[T any] struct {
	l lists.List
}

// NewGodsArray creates a Sequence backed by gods arraylist.
func NewGodsArray[T any]() *Gods[T] {
	return &Gods[T]{l: arraylist.New()}
}

// NewGodsLinked creates a Sequence backed by gods doublylinkedlist.
func NewGodsLinked[T any]() *Gods[T] {
	return &Gods[T]{l: doublylinkedlist.New()}
}

// PushFront inserts v at index 0.
func (g *Gods[T]) PushFront(v T) {
	g.l.Insert(0, v)
}

// PushBack appends v.
func (g *Gods[T]) PushBack(v T) {
	g.l.Add(v)
}

// InsertAt inserts v at index.
func (g *Gods[T]) InsertAt(index int, v T) {
	checkPosition(index, g.l.Size())
	g.l.Insert(index, v)
}

// RemoveFront removes and returns the first element.
func (g *Gods[T]) RemoveFront() T {
	if g.l.Empty() {
		panic(msgEmpty)
	}
	return g.RemoveAt(0)
}

// RemoveAt removes and returns the element at index.
// gods Remove does not return the value, so the list is read first.
func (g *Gods[T]) RemoveAt(index int) T {
	v := g.At(index)
	g.l.Remove(index)
	return v
}

// At returns the element at index.
func (g *Gods[T]) At(index int) T {
	checkIndex(index, g.l.Size())
	v, _ := g.l.Get(index)
	return v.(T)
}

// Len returns the number of elements.
func (g *Gods[T]) Len() int {
	return g.l.Size()
}

// Empty reports whether the sequence has no elements.
func (g *Gods[T]) Empty() bool {
	return g.l.Empty()
}

// Clear removes all elements.
func (g *Gods[T]) Clear() {
	g.l.Clear()
}

// Values returns a copy of the elements in order.
func (g *Gods[T]) Values() []T {
	raw := g.l.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out
}

// Cursor returns an index-tracking cursor at index.
func (g *Gods[T]) Cursor(index int) Cursor[T] {
	return newIndexCursor[T](g, index)
}
