package runner

import (
	"context"
	"regexp"
	"runtime"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/randomizedcoder/seqbench/internal/config"
	"github.com/randomizedcoder/seqbench/internal/payload"
	"github.com/randomizedcoder/seqbench/internal/workload"
)

// Sink variable to prevent the compiler from eliminating trial work
var sinkTally workload.Tally

// Benchmark pairs a mix with the strategy it runs against.
type Benchmark struct {
	Mix      workload.Mix
	Strategy workload.Strategy
}

// Name returns "<mix>/<strategy>".
func (b Benchmark) Name() string {
	return workload.Name(b.Mix, b.Strategy)
}

// All returns every mix and strategy pair, grouped by mix.
func All() []Benchmark {
	var out []Benchmark
	for _, m := range workload.Mixes() {
		for _, s := range workload.Strategies() {
			out = append(out, Benchmark{Mix: m, Strategy: s})
		}
	}
	return out
}

// Select filters All by the configured strategies and name pattern.
func Select(cfg *config.Config) ([]Benchmark, error) {
	var pattern *regexp.Regexp
	if cfg.Bench != "" {
		var err error
		if pattern, err = regexp.Compile(cfg.Bench); err != nil {
			return nil, errors.Wrapf(err, "compile bench pattern %q", cfg.Bench)
		}
	}

	var out []Benchmark
	for _, b := range All() {
		if len(cfg.Strategies) > 0 && !slices.Contains(cfg.Strategies, b.Strategy.Name) {
			continue
		}
		if pattern != nil && !pattern.MatchString(b.Name()) {
			continue
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("no benchmark matches strategies=%v bench=%q", cfg.Strategies, cfg.Bench)
	}
	return out, nil
}

// Runner executes benchmarks trial by trial on the calling goroutine.
type Runner struct {
	cfg    *config.Config
	logger logrus.FieldLogger
	seed   uint64
}

// New creates a Runner. A zero cfg.Seed is replaced by a time-based seed,
// reported by Seed.
func New(cfg *config.Config, logger logrus.FieldLogger) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Runner{
		cfg:    cfg,
		logger: logger,
		seed:   seed,
	}
}

// Seed returns the seed the runner draws payloads and coin flips from.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Run measures every benchmark in order. Cancellation is observed between
// trials; results of fully measured benchmarks are returned along with the
// context error.
func (r *Runner) Run(ctx context.Context, benches []Benchmark) ([]Result, error) {
	rng := payload.NewRand(r.seed)
	results := make([]Result, 0, len(benches))

	for _, b := range benches {
		trial := &workload.Trial{
			Mix:      b.Mix,
			Strategy: b.Strategy,
			N:        r.cfg.N,
			Length:   r.cfg.Length,
			Rng:      rng,
		}
		log := r.logger.WithField("benchmark", b.Name())

		for i := 0; i < r.cfg.Warmup; i++ {
			if err := ctx.Err(); err != nil {
				return results, errors.Wrap(err, "run interrupted")
			}
			elapsed, _, err := r.trial(trial)
			if err != nil {
				return results, err
			}
			log.WithFields(logrus.Fields{
				"warmup":  i + 1,
				"elapsed": elapsed,
			}).Debug("warm-up trial finished")
		}

		res := Result{
			Benchmark: b.Name(),
			Mix:       b.Mix.Name,
			Strategy:  b.Strategy.Name,
			N:         r.cfg.N,
			Length:    r.cfg.Length,
			Trials:    make([]time.Duration, 0, r.cfg.Iterations),
		}
		for i := 0; i < r.cfg.Iterations; i++ {
			if err := ctx.Err(); err != nil {
				return results, errors.Wrap(err, "run interrupted")
			}
			elapsed, tally, err := r.trial(trial)
			if err != nil {
				return results, err
			}
			res.Trials = append(res.Trials, elapsed)
			res.Ops += tally.Ops()
			res.Checksum ^= tally.Checksum
			log.WithFields(logrus.Fields{
				"trial":    i + 1,
				"elapsed":  elapsed,
				"inserted": tally.Inserted,
				"removed":  tally.Removed,
			}).Debug("trial finished")
		}

		log.WithFields(logrus.Fields{
			"mean":     res.Mean(),
			"ns_op":    res.NsPerOp(),
			"trials":   len(res.Trials),
			"strategy": b.Strategy.Name,
		}).Info("benchmark finished")
		results = append(results, res)
	}
	return results, nil
}

// trial runs one setup, timed run, validate, teardown cycle.
func (r *Runner) trial(t *workload.Trial) (time.Duration, workload.Tally, error) {
	t.Setup()
	defer func() {
		t.Teardown()
		runtime.GC()
	}()

	start := time.Now()
	tally := t.Run()
	elapsed := time.Since(start)
	sinkTally = tally

	return elapsed, tally, t.Validate()
}
