// Package payload generates the synthetic records copied into the sequences
// under measurement.
//
// Each Record carries a random integer and a large random lowercase string so
// that copy and allocation cost per operation is non-trivial and uniform
// across trials. A Set is generated once per trial and only read afterwards.
package payload

import (
	"math/rand/v2"
	"strings"
)

const (
	// DefaultLength is the length of Record.Text in the sampled configuration.
	DefaultLength = 10_000

	// DefaultCount is the trial size n in the sampled configuration.
	DefaultCount = 50_000

	alphabet = "abcdefghijklmnopqrstuvwxyz"
)

// Record is a by-value payload element. Copying a Record copies both fields;
// the string data itself is immutable and shared.
type Record struct {
	Value int64
	Text  string
}

// Set is the ordered pool of records a trial copies from.
type Set []Record

// NewRand returns a random source for Generate. A zero seed draws a fresh
// seed from the runtime source, so runs are not repeatable.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns n records whose Text fields are exactly length lowercase
// ASCII letters and whose Value fields span the full int64 range.
// Negative n or length are treated as zero.
func Generate(rng *rand.Rand, n, length int) Set {
	if n < 0 {
		n = 0
	}
	set := make(Set, n)
	for i := range set {
		set[i] = Record{
			Value: int64(rng.Uint64()),
			Text:  RandomString(rng, length),
		}
	}
	return set
}

// RandomString returns length letters drawn uniformly from a-z.
func RandomString(rng *rand.Rand, length int) string {
	if length <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length)
	for range length {
		sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
	}
	return sb.String()
}

// Bytes returns the approximate payload size of the set in bytes.
func (s Set) Bytes() int {
	total := 0
	for _, r := range s {
		total += len(r.Text) + 8
	}
	return total
}
