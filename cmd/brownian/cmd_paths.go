package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/brownian/export"
	"github.com/katalvlaran/brownian/matrix"
	"github.com/katalvlaran/brownian/motion"
	"github.com/spf13/cobra"
)

// pathsPrefix names multi-path artifacts.
const pathsPrefix = "brownian-motion-time-and-space"

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Simulate independent Brownian displacement paths over time",
		Long: `Simulate one or more independent Wiener paths.

The time axis has --samples evenly spaced points from 0 to --total-time.
Increments between consecutive samples are Gaussian with variance dt.
Every path starts at 0.

Examples:
  brownian paths --samples 1000 --paths 5 --total-time 1.0
  brownian paths --seed 7 --stdout --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("samples") {
				cfg.Paths.Samples, _ = flags.GetInt("samples")
			}
			if flags.Changed("paths") {
				cfg.Paths.Paths, _ = flags.GetInt("paths")
			}
			if flags.Changed("total-time") {
				cfg.Paths.TotalTime, _ = flags.GetFloat64("total-time")
			}

			logger := newLogger(cmd, cfg)
			params := cfg.PathParams()
			ps, err := motion.PathsWith(params, generatorOptions(cfg)...)
			if err != nil {
				return fmt.Errorf("paths: %w", err)
			}

			summary, err := ps.IncrementSummary()
			if err != nil {
				return fmt.Errorf("paths: %w", err)
			}
			logger.Info("paths generated",
				"samples", params.SampleCount,
				"paths", params.PathCount,
				"total_time", params.TotalTime,
				"dt", ps.Dt(),
				"increments", summary.String(),
				"expected_std", math.Sqrt(ps.Dt()),
			)
			if err := logPathIncrements(logger, ps); err != nil {
				return fmt.Errorf("paths: %w", err)
			}

			_, err = emit(cmd, cfg, logger, pathsPrefix, func(w io.Writer, f export.Format) error {
				return export.WritePaths(w, ps, f)
			})
			return err
		},
	}

	cmd.Flags().Int("samples", 0, "Number of time samples (>= 2)")
	cmd.Flags().Int("paths", 0, "Number of independent paths (>= 1)")
	cmd.Flags().Float64("total-time", 0, "Time horizon T (> 0)")

	return cmd
}

// logPathIncrements logs the increment mean and std of every path at debug
// level.
func logPathIncrements(logger *slog.Logger, ps motion.PathSet) error {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	inc, err := ps.Increments()
	if err != nil {
		return err
	}
	means, err := matrix.ColumnMeans(inc)
	if err != nil {
		return err
	}
	stds, err := matrix.ColumnStds(inc)
	if err != nil {
		return err
	}
	for j := range means {
		logger.Debug("path increments", "path", j, "mean", means[j], "std", stds[j])
	}

	return nil
}
