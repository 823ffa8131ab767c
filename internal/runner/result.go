// Package runner times workload trials outside of the go test harness.
package runner

import (
	"slices"
	"time"
)

// Result holds the measured trials of one benchmark.
type Result struct {
	Benchmark string          `json:"benchmark"`
	Mix       string          `json:"mix"`
	Strategy  string          `json:"strategy"`
	N         int             `json:"n"`
	Length    int             `json:"length"`
	Trials    []time.Duration `json:"trials_ns"`

	// Ops is the number of insert and remove operations across all
	// measured trials.
	Ops      int   `json:"ops"`
	Checksum int64 `json:"checksum"`
}

// Total returns the summed duration of all measured trials.
func (r Result) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Trials {
		total += d
	}
	return total
}

// Mean returns the average trial duration.
func (r Result) Mean() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}
	return r.Total() / time.Duration(len(r.Trials))
}

// Min returns the fastest trial.
func (r Result) Min() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}
	return slices.Min(r.Trials)
}

// Max returns the slowest trial.
func (r Result) Max() time.Duration {
	if len(r.Trials) == 0 {
		return 0
	}
	return slices.Max(r.Trials)
}

// NsPerOp returns the average cost of one insert or remove.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Total().Nanoseconds()) / float64(r.Ops)
}
