// Package workload drives sequences through fixed operation mixes.
//
// A benchmark is one Mix run against one Strategy. Each run is a Trial:
// Setup generates a fresh payload set and sequence (pre-filled when the mix
// needs it), Run performs the timed operations, Teardown discards all state.
// No state survives from one trial to the next.
//
// Every mix returns a Tally folded from each record it inserted or removed,
// so callers can hand the result to a sink and keep the work observable.
package workload

import (
	"github.com/randomizedcoder/seqbench/internal/payload"
	"github.com/randomizedcoder/seqbench/internal/seq"
)

// Sequence is the subject container type used by every mix.
type Sequence = seq.Sequence[payload.Record]

// Strategy names a sequence implementation and how mixes should drive it.
type Strategy struct {
	Name string

	// Positional strategies are driven through a held cursor for middle
	// insertion and random insert/remove. Others recompute an index per
	// operation.
	Positional bool

	New func() Sequence
}

var (
	// Array is the contiguous slice strategy.
	Array = Strategy{
		Name: "array",
		New:  func() Sequence { return seq.NewArray[payload.Record](0) },
	}

	// Linked is the container/list strategy.
	Linked = Strategy{
		Name:       "linked",
		Positional: true,
		New:        func() Sequence { return seq.NewLinked[payload.Record]() },
	}

	// GodsArray is the emirpasic/gods arraylist strategy.
	GodsArray = Strategy{
		Name: "gods-array",
		New:  func() Sequence { return seq.NewGodsArray[payload.Record]() },
	}

	// GodsLinked is the emirpasic/gods doublylinkedlist strategy.
	GodsLinked = Strategy{
		Name: "gods-linked",
		New:  func() Sequence { return seq.NewGodsLinked[payload.Record]() },
	}
)

// Strategies returns every known strategy, the two primary ones first.
func Strategies() []Strategy {
	return []Strategy{Array, Linked, GodsArray, GodsLinked}
}

// LookupStrategy finds a strategy by name.
func LookupStrategy(name string) (Strategy, bool) {
	for _, s := range Strategies() {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}

// Tally summarizes the work a mix performed.
type Tally struct {
	Inserted int
	Removed  int

	// Checksum folds the Value of every record touched.
	Checksum int64
}

// Ops returns the number of insert and remove operations performed.
func (t Tally) Ops() int {
	return t.Inserted + t.Removed
}

func (t *Tally) insert(r payload.Record) {
	t.Inserted++
	t.Checksum += r.Value
}

func (t *Tally) remove(r payload.Record) {
	t.Removed++
	t.Checksum ^= r.Value
}
