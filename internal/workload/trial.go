package workload

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/seqbench/internal/payload"
)

// Trial is one setup, run, teardown cycle of a Mix against a Strategy.
//
// Only Run should be timed. A Trial may be reused: each Setup starts from
// nothing.
type Trial struct {
	Mix      Mix
	Strategy Strategy

	// N is the payload set size and the iteration count of the mix.
	N int

	// Length is the Text length of every generated record.
	Length int

	// Rng feeds both payload generation and the random mix.
	Rng *rand.Rand

	set   payload.Set
	seq   Sequence
	start int
	tally Tally
}

// Name returns "<mix>/<strategy>".
func (t *Trial) Name() string {
	return Name(t.Mix, t.Strategy)
}

// Name returns the benchmark name for a mix and strategy pair.
func Name(m Mix, s Strategy) string {
	return m.Name + "/" + s.Name
}

// Setup generates the payload set and a fresh sequence.
func (t *Trial) Setup() {
	t.set = payload.Generate(t.Rng, t.N, t.Length)
	t.seq = t.Strategy.New()
	if t.Mix.Prefill {
		for i := range t.set {
			t.seq.PushBack(t.set[i])
		}
	}
	t.start = t.seq.Len()
	t.tally = Tally{}
}

// Run performs the mix and returns its tally.
func (t *Trial) Run() Tally {
	t.tally = t.Mix.Run(t.seq, t.Strategy.Positional, t.set, t.Rng)
	return t.tally
}

// Validate checks the final length against the operations the tally
// recorded. Call it after Run and before Teardown.
func (t *Trial) Validate() error {
	if t.seq == nil {
		return errors.Errorf("%s: validate called outside setup/teardown", t.Name())
	}
	want := t.start + t.tally.Inserted - t.tally.Removed
	if got := t.seq.Len(); got != want {
		return errors.Errorf("%s: final length %d, want %d (start %d, +%d, -%d)",
			t.Name(), got, want, t.start, t.tally.Inserted, t.tally.Removed)
	}
	if t.Mix.Exact && t.tally.Ops() != t.N {
		return errors.Errorf("%s: performed %d operations, want %d",
			t.Name(), t.tally.Ops(), t.N)
	}
	if !t.Mix.Exact && t.tally.Ops() > t.N {
		return errors.Errorf("%s: performed %d operations, at most %d allowed",
			t.Name(), t.tally.Ops(), t.N)
	}
	return nil
}

// Sequence returns the subject container of the current trial.
func (t *Trial) Sequence() Sequence {
	return t.seq
}

// Payload returns the payload set of the current trial.
func (t *Trial) Payload() payload.Set {
	return t.set
}

// Teardown clears the sequence and drops all trial state.
func (t *Trial) Teardown() {
	if t.seq != nil {
		t.seq.Clear()
	}
	t.seq = nil
	t.set = nil
	t.start = 0
}
