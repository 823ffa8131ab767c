package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/seqbench/internal/seq"
)

type factory struct {
	name   string
	create func() seq.Sequence[int]
}

func factories() []factory {
	return []factory{
		{"Array", func() seq.Sequence[int] { return seq.NewArray[int](0) }},
		{"Linked", func() seq.Sequence[int] { return seq.NewLinked[int]() }},
		{"GodsArray", func() seq.Sequence[int] { return seq.NewGodsArray[int]() }},
		{"GodsLinked", func() seq.Sequence[int] { return seq.NewGodsLinked[int]() }},
	}
}

func fill(s seq.Sequence[int], vals ...int) {
	for _, v := range vals {
		s.PushBack(v)
	}
}

// forEach runs fn against a fresh sequence of every implementation.
func forEach(t *testing.T, fn func(t *testing.T, s seq.Sequence[int])) {
	t.Helper()
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			fn(t, f.create())
		})
	}
}

func TestSequence_Empty(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		assert.True(t, s.Empty())
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Values())
	})
}

func TestSequence_PushFront(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		for k := 1; k <= 10; k++ {
			s.PushFront(k)
			require.Equal(t, k, s.Len())
			require.Equal(t, k, s.At(0), "most recent push must be at index 0")
		}
		assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, s.Values())
	})
}

func TestSequence_PushBack(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 1, 2, 3)
		assert.Equal(t, []int{1, 2, 3}, s.Values())
		assert.False(t, s.Empty())
	})
}

func TestSequence_InsertAt(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 1, 2, 3)
		s.InsertAt(0, 0)
		s.InsertAt(4, 4)
		s.InsertAt(2, 9)
		assert.Equal(t, []int{0, 1, 9, 2, 3, 4}, s.Values())
	})
}

// InsertAt(Len()/2) places the new element at floor(m/2) and pushes the
// previous occupant to floor(m/2)+1, for odd and even m alike.
func TestSequence_InsertAtMiddle_TieBreak(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		for m := 0; m < 9; m++ {
			mid := s.Len() / 2
			var prev int
			hadPrev := mid < s.Len()
			if hadPrev {
				prev = s.At(mid)
			}

			s.InsertAt(mid, 100+m)

			require.Equal(t, m+1, s.Len())
			require.Equal(t, 100+m, s.At(mid))
			if hadPrev {
				require.Equal(t, prev, s.At(mid+1))
			}
		}
	})
}

func TestSequence_InsertAtMiddle_SameOrder(t *testing.T) {
	var want []int
	for i, f := range factories() {
		s := f.create()
		for v := 0; v < 25; v++ {
			s.InsertAt(s.Len()/2, v)
		}
		if i == 0 {
			want = s.Values()
			continue
		}
		assert.Equal(t, want, s.Values(), f.name)
	}
}

func TestSequence_RemoveFront(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		const n = 100
		for i := 0; i < n; i++ {
			s.PushBack(i)
		}
		for i := 0; i < n; i++ {
			require.False(t, s.Empty(), "empty before call %d", i+1)
			require.Equal(t, i, s.RemoveFront())
		}
		assert.True(t, s.Empty())
	})
}

func TestSequence_RemoveAt(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 0, 1, 2, 3, 4, 5)
		assert.Equal(t, 3, s.RemoveAt(3))
		assert.Equal(t, 0, s.RemoveAt(0))
		assert.Equal(t, 5, s.RemoveAt(s.Len()-1))
		assert.Equal(t, []int{1, 2, 4}, s.Values())
	})
}

func TestSequence_Clear(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 1, 2, 3)
		s.Clear()
		assert.True(t, s.Empty())

		s.PushBack(7)
		assert.Equal(t, []int{7}, s.Values())
	})
}

func TestSequence_Values_IsCopy(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 1, 2, 3)
		vals := s.Values()
		vals[0] = 42
		assert.Equal(t, 1, s.At(0))
	})
}

func TestSequence_Preconditions_Panic(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		assert.PanicsWithValue(t, "seq: RemoveFront on empty sequence", func() { s.RemoveFront() })
		assert.Panics(t, func() { s.At(0) })
		assert.Panics(t, func() { s.RemoveAt(0) })
		assert.Panics(t, func() { s.InsertAt(1, 1) })
		assert.Panics(t, func() { s.InsertAt(-1, 1) })
		assert.Panics(t, func() { s.Cursor(1) })
	})
}

func TestCursor_InsertAdvances(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 1, 2, 3)
		c := s.Cursor(1)
		c.Insert(10)
		c.Insert(11)

		assert.Equal(t, 3, c.Index())
		assert.Equal(t, []int{1, 10, 11, 2, 3}, s.Values())
		require.True(t, c.HasNext())
		assert.Equal(t, 2, c.Next())
	})
}

func TestCursor_WalkBothWays(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 1, 2, 3)
		c := s.Cursor(0)

		assert.False(t, c.HasPrev())
		var forward []int
		for c.HasNext() {
			forward = append(forward, c.Next())
		}
		assert.Equal(t, []int{1, 2, 3}, forward)
		assert.Equal(t, 3, c.Index())

		var backward []int
		for c.HasPrev() {
			backward = append(backward, c.Prev())
		}
		assert.Equal(t, []int{3, 2, 1}, backward)
		assert.Equal(t, 0, c.Index())
	})
}

func TestCursor_RemoveNext(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		fill(s, 1, 2, 3, 4)
		c := s.Cursor(1)

		assert.Equal(t, 2, c.RemoveNext())
		assert.Equal(t, 1, c.Index())
		assert.Equal(t, 3, c.RemoveNext())
		assert.Equal(t, []int{1, 4}, s.Values())

		assert.Equal(t, 4, c.Next())
		assert.False(t, c.HasNext())
		assert.Panics(t, func() { c.RemoveNext() })
	})
}

func TestCursor_InsertAtEnd(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		c := s.Cursor(0)
		c.Insert(1)
		c.Insert(2)
		assert.Equal(t, 2, c.Prev())
		c.Insert(5)
		assert.Equal(t, []int{1, 5, 2}, s.Values())
	})
}

func TestCursor_Preconditions_Panic(t *testing.T) {
	forEach(t, func(t *testing.T, s seq.Sequence[int]) {
		c := s.Cursor(0)
		assert.PanicsWithValue(t, "seq: cursor has no next element", func() { c.Next() })
		assert.PanicsWithValue(t, "seq: cursor has no previous element", func() { c.Prev() })
	})
}
