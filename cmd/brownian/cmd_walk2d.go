package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/brownian/export"
	"github.com/katalvlaran/brownian/motion"
	"github.com/spf13/cobra"
)

// walk2DPrefix names 2D walk artifacts.
const walk2DPrefix = "2D-brownian-motion"

func newWalk2DCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk2d",
		Short: "Simulate one particle's Brownian motion in two dimensions",
		Long: `Simulate one particle's (x, y) positions.

Each step moves the particle by independent Gaussian increments on both
axes with standard deviation sigma * sqrt(step-size). The walk starts at
the origin.

Examples:
  brownian walk2d --steps 1000 --step-size 1 --sigma 1
  brownian walk2d --config configuration.txt --seed 42 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("steps") {
				cfg.Walk2D.Steps, _ = flags.GetInt("steps")
			}
			if flags.Changed("step-size") {
				cfg.Walk2D.StepSize, _ = flags.GetFloat64("step-size")
			}
			if flags.Changed("sigma") {
				cfg.Walk2D.Sigma, _ = flags.GetFloat64("sigma")
			}

			logger := newLogger(cmd, cfg)
			params := cfg.WalkParams()
			traj, err := motion.Walk2DWith(params, generatorOptions(cfg)...)
			if err != nil {
				return fmt.Errorf("walk2d: %w", err)
			}
			logger.Info("walk generated",
				"steps", params.StepCount,
				"step_size", params.StepSize,
				"sigma", params.Sigma,
				"increments", traj.IncrementSummary().String(),
			)

			_, err = emit(cmd, cfg, logger, walk2DPrefix, func(w io.Writer, f export.Format) error {
				return export.WriteWalk(w, traj, f)
			})
			return err
		},
	}

	cmd.Flags().Int("steps", 0, "Number of recorded positions (>= 1)")
	cmd.Flags().Float64("step-size", 0, "Time interval per step (> 0)")
	cmd.Flags().Float64("sigma", 0, "Diffusion standard deviation (> 0)")

	return cmd
}
