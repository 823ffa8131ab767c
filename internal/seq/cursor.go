package seq

// indexCursor tracks its position as a plain index and delegates every
// operation to the sequence's index-based methods. Its cost per step is
// whatever the sequence charges for index access.
type indexCursor[T any] struct {
	s Sequence[T]
	i int
}

func newIndexCursor[T any](s Sequence[T], index int) *indexCursor[T] {
	checkPosition(index, s.Len())
	return &indexCursor[T]{s: s, i: index}
}

func (c *indexCursor[T]) Insert(v T) {
	c.s.InsertAt(c.i, v)
	c.i++
}

func (c *indexCursor[T]) HasNext() bool {
	return c.i < c.s.Len()
}

func (c *indexCursor[T]) Next() T {
	if !c.HasNext() {
		panic(msgNoNext)
	}
	v := c.s.At(c.i)
	c.i++
	return v
}

func (c *indexCursor[T]) HasPrev() bool {
	return c.i > 0
}

func (c *indexCursor[T]) Prev() T {
	if c.i == 0 {
		panic(msgNoPrev)
	}
	c.i--
	return c.s.At(c.i)
}

func (c *indexCursor[T]) RemoveNext() T {
	if !c.HasNext() {
		panic(msgNoNext)
	}
	return c.s.RemoveAt(c.i)
}

func (c *indexCursor[T]) Index() int {
	return c.i
}
