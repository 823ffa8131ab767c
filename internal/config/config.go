// Package config holds the tunables of a benchmark run.
package config

import (
	"encoding/json"
	"os"
	"regexp"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/seqbench/internal/payload"
	"github.com/randomizedcoder/seqbench/internal/workload"
)

// Config tuple.
type Config struct {
	// N is the trial size: payload records per trial and iterations per mix.
	N int `json:"n"`

	// Length is the Text length of every payload record.
	Length int `json:"length"`

	// Warmup trials are run and discarded before measurement.
	Warmup int `json:"warmup"`

	// Iterations is the number of measured trials per benchmark.
	Iterations int `json:"iterations"`

	// Seed for payload and random mixes. 0 picks a fresh seed per run.
	Seed uint64 `json:"seed"`

	// Strategies to measure. Empty means all.
	Strategies []string `json:"strategies,omitempty"`

	// Bench is a regular expression matched against "<mix>/<strategy>".
	Bench string `json:"bench,omitempty"`
}

// DefaultConfig returns the sampled configuration: n=50000, L=10000,
// one warm-up and two measured trials per benchmark.
func DefaultConfig() *Config {
	return &Config{
		N:          payload.DefaultCount,
		Length:     payload.DefaultLength,
		Warmup:     1,
		Iterations: 2,
	}
}

// UnmarshalJSON interface on Config.
func (c *Config) UnmarshalJSON(b []byte) error {
	type confAlias *Config
	conf := confAlias(DefaultConfig())
	if err := json.Unmarshal(b, conf); err != nil {
		return err
	}
	*c = Config(*conf)
	return nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.N < 0 {
		return errors.Errorf("config.n.must.be.non-negative: %d", c.N)
	}
	if c.Length < 0 {
		return errors.Errorf("config.length.must.be.non-negative: %d", c.Length)
	}
	if c.Warmup < 0 {
		return errors.Errorf("config.warmup.must.be.non-negative: %d", c.Warmup)
	}
	if c.Iterations < 1 {
		return errors.Errorf("config.iterations.must.be.positive: %d", c.Iterations)
	}
	for _, name := range c.Strategies {
		if _, ok := workload.LookupStrategy(name); !ok {
			return errors.Errorf("config.unknown.strategy: %q", name)
		}
	}
	if c.Bench != "" {
		if _, err := regexp.Compile(c.Bench); err != nil {
			return errors.Wrapf(err, "config.bench.invalid.pattern: %q", c.Bench)
		}
	}
	return nil
}

// LoadConfig reads a JSON config file. Fields absent from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	conf := &Config{}
	if err := json.Unmarshal(data, conf); err != nil {
		return nil, errors.WithStack(err)
	}
	return conf, nil
}

// WriteConfig writes conf as indented JSON.
func WriteConfig(path string, conf *Config) error {
	b, err := json.MarshalIndent(conf, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, b, 0o644))
}
