package workload_test

import (
	"testing"

	"github.com/randomizedcoder/seqbench/internal/payload"
	"github.com/randomizedcoder/seqbench/internal/workload"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkTally workload.Tally
var sinkLen int

// Sized down from n=50,000 / L=10,000 so a full -bench=. run stays fast.
// Use cmd/seqbench for the full-size configuration.
const (
	benchN      = 5_000
	benchLength = 1_000
)

// benchMix runs one trial per b.N iteration with setup and teardown
// excluded from the timer.
func benchMix(b *testing.B, mix workload.Mix) {
	for _, strat := range workload.Strategies() {
		b.Run(strat.Name, func(b *testing.B) {
			trial := &workload.Trial{
				Mix:      mix,
				Strategy: strat,
				N:        benchN,
				Length:   benchLength,
				Rng:      payload.NewRand(1),
			}
			b.ReportAllocs()
			b.ResetTimer()

			var tally workload.Tally
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				trial.Setup()
				b.StartTimer()

				tally = trial.Run()

				b.StopTimer()
				sinkLen = trial.Sequence().Len()
				trial.Teardown()
				b.StartTimer()
			}
			sinkTally = tally
		})
	}
}

func BenchmarkInsertAtBeginning(b *testing.B) {
	benchMix(b, workload.MixInsertAtBeginning)
}

func BenchmarkInsertAtMiddle(b *testing.B) {
	benchMix(b, workload.MixInsertAtMiddle)
}

func BenchmarkRemoveFirst(b *testing.B) {
	benchMix(b, workload.MixRemoveFirst)
}

func BenchmarkRandomInsertRemove(b *testing.B) {
	benchMix(b, workload.MixRandomInsertRemove)
}

// Index path vs cursor path on the same linked strategy

func BenchmarkInsertAtMiddle_Linked_IndexPath(b *testing.B) {
	set := payload.Generate(payload.NewRand(1), benchN/5, 16)
	b.ReportAllocs()
	b.ResetTimer()

	var tally workload.Tally
	for i := 0; i < b.N; i++ {
		tally = workload.InsertAtMiddle(workload.Linked.New(), set)
	}
	sinkTally = tally
}

func BenchmarkInsertAtMiddle_Linked_CursorPath(b *testing.B) {
	set := payload.Generate(payload.NewRand(1), benchN/5, 16)
	b.ReportAllocs()
	b.ResetTimer()

	var tally workload.Tally
	for i := 0; i < b.N; i++ {
		tally = workload.InsertAtMiddleCursor(workload.Linked.New(), set)
	}
	sinkTally = tally
}
