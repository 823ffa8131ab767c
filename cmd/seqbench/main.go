// Command seqbench compares contiguous and linked sequence strategies under
// front insertion, middle insertion, front removal and random insert/remove.
//
// Usage:
//
//	go run ./cmd/seqbench run -n 50000 --length 10000
//	go run ./cmd/seqbench run -n 5000 --strategies array,linked --bench '^Insert'
//	go run ./cmd/seqbench list
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/randomizedcoder/seqbench/internal/config"
	"github.com/randomizedcoder/seqbench/internal/report"
	"github.com/randomizedcoder/seqbench/internal/runner"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seqbench: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqbench",
		Short: "Array vs linked sequence throughput benchmarks",
		Long: `Seqbench drives each sequence strategy through the same fixed operation
mixes on freshly generated payload records and compares trial times.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())

	return root
}

type runFlags struct {
	configPath string
	n          int
	length     int
	warmup     int
	iterations int
	seed       uint64
	strategies []string
	bench      string
	outputJSON bool
	logLevel   string
	logFormat  string
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run benchmarks and print a comparison report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger, err := newLogger(f.logLevel, f.logFormat)
			if err != nil {
				return err
			}
			return runBenchmarks(cmd, conf, logger, f.outputJSON)
		},
	}

	defaults := config.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "",
		"Path to a JSON config file; flags override its values")
	flags.IntVarP(&f.n, "n", "n", defaults.N,
		"Trial size: payload records and iterations per mix")
	flags.IntVar(&f.length, "length", defaults.Length,
		"Text length of every payload record")
	flags.IntVar(&f.warmup, "warmup", defaults.Warmup,
		"Warm-up trials per benchmark")
	flags.IntVar(&f.iterations, "iterations", defaults.Iterations,
		"Measured trials per benchmark")
	flags.Uint64Var(&f.seed, "seed", 0,
		"Random seed (0 = use current time)")
	flags.StringSliceVar(&f.strategies, "strategies", nil,
		"Strategies to measure (array,linked,gods-array,gods-linked)")
	flags.StringVar(&f.bench, "bench", "",
		"Regular expression matched against <mix>/<strategy>")
	flags.BoolVar(&f.outputJSON, "json", false,
		"Output results as JSON instead of markdown")
	flags.StringVar(&f.logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	flags.StringVar(&f.logFormat, "log-format", "text",
		"Log format: text, json")

	return cmd
}

// resolveConfig layers defaults, the optional config file and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command, f runFlags) (*config.Config, error) {
	conf := config.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "load config %s", f.configPath)
		}
		conf = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		conf.N = f.n
	}
	if flags.Changed("length") {
		conf.Length = f.length
	}
	if flags.Changed("warmup") {
		conf.Warmup = f.warmup
	}
	if flags.Changed("iterations") {
		conf.Iterations = f.iterations
	}
	if flags.Changed("seed") {
		conf.Seed = f.seed
	}
	if flags.Changed("strategies") {
		conf.Strategies = f.strategies
	}
	if flags.Changed("bench") {
		conf.Bench = f.bench
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func runBenchmarks(cmd *cobra.Command, conf *config.Config, logger *logrus.Logger, outputJSON bool) error {
	benches, err := runner.Select(conf)
	if err != nil {
		return err
	}

	r := runner.New(conf, logger)
	logger.WithFields(logrus.Fields{
		"n":          conf.N,
		"length":     conf.Length,
		"warmup":     conf.Warmup,
		"iterations": conf.Iterations,
		"seed":       r.Seed(),
		"benchmarks": len(benches),
	}).Info("starting benchmarks")

	results, runErr := r.Run(cmd.Context(), benches)
	if runErr != nil && len(results) == 0 {
		return runErr
	}
	if runErr != nil {
		logger.WithError(runErr).Warn("run stopped early, reporting completed benchmarks")
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		err = report.GenerateJSON(out, results)
	} else {
		err = report.Generate(out, results)
	}
	if err != nil {
		return errors.Wrap(err, "generate report")
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("benchmarks complete")
	return nil
}

func newLogger(level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level")
	}
	logger.SetLevel(lvl)

	switch format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return logger, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List benchmark names",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, b := range runner.All() {
				fmt.Fprintln(cmd.OutOrStdout(), b.Name())
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seqbench %s\n", version)
		},
	}
}
