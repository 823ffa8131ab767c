package workload

import (
	"math/rand/v2"

	"github.com/randomizedcoder/seqbench/internal/payload"
)

// Mix is a fixed operation sequence run once per trial.
type Mix struct {
	Name string

	// Prefill means the sequence starts holding a copy of every payload record.
	Prefill bool

	// Exact means every iteration performs exactly one operation, so the
	// tally must account for the whole payload set.
	Exact bool

	Run func(s Sequence, positional bool, set payload.Set, rng *rand.Rand) Tally
}

// Operation mixes measured for every strategy.
var (
	MixInsertAtBeginning = Mix{
		Name:  "InsertAtBeginning",
		Exact: true,
		Run: func(s Sequence, _ bool, set payload.Set, _ *rand.Rand) Tally {
			return InsertAtBeginning(s, set)
		},
	}

	MixInsertAtMiddle = Mix{
		Name:  "InsertAtMiddle",
		Exact: true,
		Run: func(s Sequence, positional bool, set payload.Set, _ *rand.Rand) Tally {
			if positional {
				return InsertAtMiddleCursor(s, set)
			}
			return InsertAtMiddle(s, set)
		},
	}

	MixRemoveFirst = Mix{
		Name:    "RemoveFirst",
		Prefill: true,
		Exact:   true,
		Run: func(s Sequence, _ bool, _ payload.Set, _ *rand.Rand) Tally {
			return RemoveFirst(s)
		},
	}

	MixRandomInsertRemove = Mix{
		Name:    "RandomInsertRemove",
		Prefill: true,
		Run: func(s Sequence, positional bool, set payload.Set, rng *rand.Rand) Tally {
			if positional {
				return RandomInsertRemoveCursor(s, set, rng)
			}
			return RandomInsertRemove(s, set, rng)
		},
	}
)

// Mixes returns every operation mix in reporting order.
func Mixes() []Mix {
	return []Mix{
		MixInsertAtBeginning,
		MixInsertAtMiddle,
		MixRemoveFirst,
		MixRandomInsertRemove,
	}
}

// LookupMix finds a mix by name.
func LookupMix(name string) (Mix, bool) {
	for _, m := range Mixes() {
		if m.Name == name {
			return m, true
		}
	}
	return Mix{}, false
}

// InsertAtBeginning pushes a copy of every record to the front, leaving the
// payload in reverse order.
func InsertAtBeginning(s Sequence, set payload.Set) Tally {
	var t Tally
	for i := range set {
		s.PushFront(set[i])
		t.insert(set[i])
	}
	return t
}

// InsertAtMiddle inserts each record at Len()/2, recomputed per insertion.
func InsertAtMiddle(s Sequence, set payload.Set) Tally {
	var t Tally
	for i := range set {
		s.InsertAt(s.Len()/2, set[i])
		t.insert(set[i])
	}
	return t
}

// InsertAtMiddleCursor builds the same order as InsertAtMiddle through one
// held cursor. Insert leaves the cursor past the new element, so after every
// insertion into an even-sized sequence it steps back once to stay on
// Len()/2.
func InsertAtMiddleCursor(s Sequence, set payload.Set) Tally {
	var t Tally
	c := s.Cursor(s.Len() / 2)
	for i := range set {
		even := s.Len()%2 == 0
		c.Insert(set[i])
		t.insert(set[i])
		if even {
			c.Prev()
		}
	}
	return t
}

// RemoveFirst removes from the front until the sequence is empty.
func RemoveFirst(s Sequence) Tally {
	var t Tally
	for !s.Empty() {
		t.remove(s.RemoveFront())
	}
	return t
}

// RandomInsertRemove flips a coin per record: heads inserts the record at a
// uniform index in [0, Len()], tails removes a uniform index in [0, Len()).
// Removal is skipped when the sequence is empty.
func RandomInsertRemove(s Sequence, set payload.Set, rng *rand.Rand) Tally {
	var t Tally
	for i := range set {
		if coin(rng) {
			s.InsertAt(rng.IntN(s.Len()+1), set[i])
			t.insert(set[i])
		} else if !s.Empty() {
			t.remove(s.RemoveAt(rng.IntN(s.Len())))
		}
	}
	return t
}

// RandomInsertRemoveCursor flips a coin per record and inserts or removes at
// a held cursor. The cursor is re-anchored to Len()/2 whenever it leaves the
// middle half [Len()/4, 3*Len()/4) or reaches the end, which bounds the walk
// cost to one traversal per quarter of drift.
func RandomInsertRemoveCursor(s Sequence, set payload.Set, rng *rand.Rand) Tally {
	var t Tally
	c := s.Cursor(s.Len() / 2)
	for i := range set {
		n := s.Len()
		if idx := c.Index(); idx < n/4 || idx >= n*3/4 || !c.HasNext() {
			c = s.Cursor(n / 2)
		}
		if coin(rng) {
			c.Insert(set[i])
			t.insert(set[i])
		} else if c.HasNext() {
			t.remove(c.RemoveNext())
		}
	}
	return t
}

func coin(rng *rand.Rand) bool {
	return rng.Uint64()&1 == 1
}
