// SPDX-License-Identifier: MIT

// Command spkmeans runs one clustering goal over a point file:
//
//	spkmeans <k> <goal> <file> [flags]
//
// k is a non-negative integer (0 lets spk pick k by the eigengap); goal is
// one of wam, ddg, lnorm, jacobi, spk, kmeans. Results go to stdout. On
// failure stdout receives exactly "Invalid Input!" or "An Error Has Occured",
// the cause is logged to stderr and the exit status is 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spkmeans/config"
	"github.com/katalvlaran/spkmeans/logging"
	"github.com/katalvlaran/spkmeans/pointset"
	"github.com/katalvlaran/spkmeans/report"
	"github.com/katalvlaran/spkmeans/spkmeans"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const exitFailure = 1

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// app carries per-invocation state between cobra and the pipeline.
type app struct {
	stdout     io.Writer
	v          *viper.Viper
	configPath string
	logger     *zap.Logger
}

// execute runs the command with args and returns the process exit status.
func execute(args []string, stdout io.Writer) int {
	a := &app{stdout: stdout, v: config.New(), logger: logging.Nop()}
	cmd := a.command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	kind := spkmeans.Classify(err)
	a.logger.Error("spkmeans failed", zap.Error(err), zap.Stringer("kind", kind))
	_, _ = fmt.Fprint(stdout, kind.Message())

	return exitFailure
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spkmeans <k> <goal> <file>",
		Short:         "Normalized spectral clustering and its intermediate matrices",
		Args:          exactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &spkmeans.Error{Kind: spkmeans.KindInput, Op: "flags", Err: err}
	})

	f := cmd.Flags()
	f.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	f.String("output", "text", "output format: text or yaml")
	f.Int("max-iter", 0, "k-means iteration cap")
	f.Int("max-rotations", 0, "Jacobi rotation cap")
	f.Float64("tolerance", 0, "Jacobi convergence tolerance")
	f.Int("workers", 0, "goroutines for per-row work (0 = GOMAXPROCS)")
	f.String("delimiter", ",", "coordinate separator")
	f.String("log-level", "warn", "debug, info, warn or error")
	f.Bool("log-dev", false, "human-readable development logs")

	bind(a.v, f, map[string]string{
		config.KeyOutput:       "output",
		config.KeyMaxIter:      "max-iter",
		config.KeyMaxRotations: "max-rotations",
		config.KeyTolerance:    "tolerance",
		config.KeyWorkers:      "workers",
		config.KeyDelimiter:    "delimiter",
		config.KeyLogLevel:     "log-level",
		config.KeyLogDev:       "log-dev",
	})

	return cmd
}

// bind attaches flags to viper keys. Viper only prefers a bound flag over
// file and environment values when the flag was set explicitly.
func bind(v *viper.Viper, f *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, f.Lookup(name)); err != nil {
			panic(err) // flag names are constants
		}
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return &spkmeans.Error{
				Kind: spkmeans.KindInput,
				Op:   "args",
				Err:  fmt.Errorf("got %d, want %d: %w", len(args), n, spkmeans.ErrArgs),
			}
		}

		return nil
	}
}

func (a *app) run(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return &spkmeans.Error{Kind: spkmeans.KindInput, Op: "config", Err: err}
	}
	if a.logger, err = logging.New(cfg.Log.Level, cfg.Log.Development); err != nil {
		a.logger = logging.Nop()
		return &spkmeans.Error{Kind: spkmeans.KindGeneric, Op: "logging", Err: err}
	}
	defer func() { _ = a.logger.Sync() }()

	k, err := spkmeans.ParseK(args[0])
	if err != nil {
		return err
	}
	goal, err := spkmeans.ParseGoal(args[1])
	if err != nil {
		return err
	}
	set, err := pointset.ReadFile(args[2], cfg.DelimiterRune())
	if err != nil {
		return err
	}

	res, err := spkmeans.Run(set, cfg.Params(goal, k), spkmeans.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Info("run complete",
		zap.String("run_id", res.RunID),
		zap.String("goal", string(goal)),
		zap.Int("n", set.Len()),
	)

	return report.Write(a.stdout, res, report.Format(cfg.Output))
}
