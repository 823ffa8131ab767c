// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/seqbench/internal/runner"
)

// Generate writes one markdown comparison table per mix. Relative compares
// each strategy's mean trial time with the fastest strategy in the same mix.
func Generate(w io.Writer, results []runner.Result) error {
	if len(results) == 0 {
		return errors.New("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "n = %d, record length = %d\n", results[0].N, results[0].Length)

	for _, group := range groupByMix(results) {
		fastest := findFastest(group)

		fmt.Fprintln(w)
		fmt.Fprintf(w, "### %s\n", group[0].Mix)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Strategy | Mean | Min | Max | ns/op | Relative |")
		fmt.Fprintln(w, "|----------|------|-----|-----|-------|----------|")

		for _, r := range group {
			relative := 1.0
			if fastest > 0 && r.Mean() > 0 {
				relative = float64(r.Mean()) / float64(fastest)
			}

			fmt.Fprintf(w, "| %s | %s | %s | %s | %.1f | %.2fx |\n",
				r.Strategy,
				formatDuration(r.Mean()),
				formatDuration(r.Min()),
				formatDuration(r.Max()),
				r.NsPerOp(),
				relative,
			)
		}
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []runner.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(results))
}

// groupByMix keeps mixes in first-seen order.
func groupByMix(results []runner.Result) [][]runner.Result {
	index := make(map[string]int)
	var groups [][]runner.Result
	for _, r := range results {
		i, ok := index[r.Mix]
		if !ok {
			i = len(groups)
			index[r.Mix] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

func findFastest(results []runner.Result) time.Duration {
	var fastest time.Duration
	for _, r := range results {
		mean := r.Mean()
		if mean > 0 && (fastest == 0 || mean < fastest) {
			fastest = mean
		}
	}
	return fastest
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
