package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/swrgo/internal/calculation"
	"github.com/rgehrsitz/swrgo/internal/config"
	"github.com/rgehrsitz/swrgo/internal/output"
	"github.com/rgehrsitz/swrgo/internal/withdrawal"
)

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [portfolio-file]",
		Short: "Find the safe annual withdrawal for a portfolio",
		Long: "Bisects the annual withdrawal between zero and twice the principal spread\n" +
			"over the horizon, keeping the largest amount whose simulated success rate\n" +
			"meets the threshold. Settings come from flags, SWRGO_* environment\n" +
			"variables or a settings file, in that order of precedence.",
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	f := cmd.Flags()
	f.IntP("runs", "n", config.DefaultRuns, "Simulations per search iteration")
	f.Float64P("threshold", "t", config.DefaultThreshold, "Required success rate between 0 and 1")
	f.Int("iterations", config.DefaultIterations, "Bisection iterations")
	f.Int("workers", 0, "Goroutines per iteration (0 = one per CPU)")
	f.Uint64("seed", 0, "Random seed (0 = seed from the clock)")
	f.StringP("format", "f", "console", "Output format (console, csv, json, yaml, html)")
	f.Float64Slice("thresholds", nil, "Also solve at each of these success rates, e.g. 0.8,0.9,0.95")
	f.String("settings", "", "Settings file (yaml, json or toml)")
	f.Bool("save", false, "Write the report to a timestamped file instead of stdout")
	f.BoolP("quiet", "q", false, "Do not print progress")
	f.Bool("debug", false, "Enable debug logging")
	return cmd
}

// bindSettings layers defaults, the settings file, environment and flags
func bindSettings(cmd *cobra.Command) (*config.RunSettings, error) {
	v := config.NewSettingsReader()
	for _, key := range []string{config.KeyRuns, config.KeyThreshold, config.KeyIterations, config.KeyWorkers, config.KeySeed, config.KeyFormat} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return nil, err
		}
	}
	settingsFile, _ := cmd.Flags().GetString("settings")
	return config.LoadRunSettings(v, settingsFile)
}

func runSolve(cmd *cobra.Command, args []string) error {
	settings, err := bindSettings(cmd)
	if err != nil {
		return err
	}
	formatter := output.GetFormatterByName(settings.Format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", settings.Format, output.AvailableFormatterNames())
	}

	debugMode, _ := cmd.Flags().GetBool("debug")
	logger, err := newLogger(debugMode)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	portfolio, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}

	opts := withdrawal.DefaultSolverOptions()
	opts.Iterations = settings.Iterations
	if settings.Workers > 0 {
		opts.Workers = settings.Workers
	}
	solver := withdrawal.NewSolver(opts)
	solver.SetLogger(logger)

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Infow("starting solve", "portfolio", args[0], "runs", settings.Runs, "threshold", settings.Threshold, "seed", seed)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	progressOut := cmd.ErrOrStderr()
	if quiet {
		progressOut = io.Discard
	}

	params := portfolio.SimulationParameters(settings.Runs, settings.Threshold)
	result, err := solver.Solve(ctx, portfolio.Assets, params, calculation.NewSource(seed), progressPrinter(progressOut, "solving"))
	if err != nil {
		return err
	}
	fmt.Fprintln(progressOut)

	report := &output.Report{
		Portfolio:  portfolio,
		Parameters: params,
		Result:     result,
		Seed:       seed,
	}

	thresholds, _ := cmd.Flags().GetFloat64Slice("thresholds")
	if len(thresholds) > 0 {
		sweep, err := solver.SolveThresholds(ctx, portfolio.Assets, params, thresholds, calculation.NewSource(seed), progressPrinter(progressOut, "sweeping"))
		if err != nil {
			return err
		}
		fmt.Fprintln(progressOut)
		report.Sweep = sweep
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		filename, err := output.WriteFormatted(formatter, report, output.Extension(formatter.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", formatter.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// progressPrinter redraws a single status line for each solver update
func progressPrinter(w io.Writer, label string) withdrawal.ProgressFunc {
	return func(percent float64) {
		fmt.Fprintf(w, "\r%s... %3.0f%%", label, percent)
	}
}
