package seq

import "container/list"

// Linked is a Sequence backed by container/list.
//
// PushFront and RemoveFront are O(1). Reaching an arbitrary index walks from
// the nearer end, so InsertAt, RemoveAt, At and Cursor cost O(n). Once a
// cursor is held, Insert, RemoveNext, Next and Prev are O(1).
type Linked[T any] struct {
	l *list.List
}

// NewLinked creates an empty Linked sequence.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{
		l: list.New(),
	}
}

// PushFront inserts v at index 0.
func (s *Linked[T]) PushFront(v T) {
	s.l.PushFront(v)
}

// PushBack appends v.
func (s *Linked[T]) PushBack(v T) {
	s.l.PushBack(v)
}

// InsertAt inserts v at index.
func (s *Linked[T]) InsertAt(index int, v T) {
	checkPosition(index, s.l.Len())
	if index == s.l.Len() {
		s.l.PushBack(v)
		return
	}
	s.l.InsertBefore(v, s.element(index))
}

// RemoveFront removes and returns the first element.
func (s *Linked[T]) RemoveFront() T {
	front := s.l.Front()
	if front == nil {
		panic(msgEmpty)
	}
	return s.l.Remove(front).(T)
}

// RemoveAt removes and returns the element at index.
func (s *Linked[T]) RemoveAt(index int) T {
	checkIndex(index, s.l.Len())
	return s.l.Remove(s.element(index)).(T)
}

// At returns the element at index.
func (s *Linked[T]) At(index int) T {
	checkIndex(index, s.l.Len())
	return s.element(index).Value.(T)
}

// Len returns the number of elements.
func (s *Linked[T]) Len() int {
	return s.l.Len()
}

// Empty reports whether the sequence has no elements.
func (s *Linked[T]) Empty() bool {
	return s.l.Len() == 0
}

// Clear removes all elements.
func (s *Linked[T]) Clear() {
	s.l.Init()
}

// Values returns a copy of the elements in order.
func (s *Linked[T]) Values() []T {
	out := make([]T, 0, s.l.Len())
	for e := s.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(T))
	}
	return out
}

// Cursor returns a cursor holding the element at index, so that later
// cursor operations do not walk the list.
func (s *Linked[T]) Cursor(index int) Cursor[T] {
	checkPosition(index, s.l.Len())
	c := &linkedCursor[T]{l: s.l, i: index}
	if index < s.l.Len() {
		c.next = s.element(index)
	}
	return c
}

// element walks to index from whichever end is closer.
func (s *Linked[T]) element(index int) *list.Element {
	n := s.l.Len()
	if index < n/2 {
		e := s.l.Front()
		for range index {
			e = e.Next()
		}
		return e
	}
	e := s.l.Back()
	for i := n - 1; i > index; i-- {
		e = e.Prev()
	}
	return e
}

// linkedCursor holds the element after the cursor; nil means the cursor is
// at the end.
type linkedCursor[T any] struct {
	l    *list.List
	next *list.Element
	i    int
}

func (c *linkedCursor[T]) Insert(v T) {
	if c.next == nil {
		c.l.PushBack(v)
	} else {
		c.l.InsertBefore(v, c.next)
	}
	c.i++
}

func (c *linkedCursor[T]) HasNext() bool {
	return c.next != nil
}

func (c *linkedCursor[T]) Next() T {
	if c.next == nil {
		panic(msgNoNext)
	}
	v := c.next.Value.(T)
	c.next = c.next.Next()
	c.i++
	return v
}

func (c *linkedCursor[T]) HasPrev() bool {
	return c.i > 0
}

func (c *linkedCursor[T]) Prev() T {
	if c.i == 0 {
		panic(msgNoPrev)
	}
	if c.next == nil {
		c.next = c.l.Back()
	} else {
		c.next = c.next.Prev()
	}
	c.i--
	return c.next.Value.(T)
}

func (c *linkedCursor[T]) RemoveNext() T {
	if c.next == nil {
		panic(msgNoNext)
	}
	e := c.next
	c.next = e.Next()
	return c.l.Remove(e).(T)
}

func (c *linkedCursor[T]) Index() int {
	return c.i
}
