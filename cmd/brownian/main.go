package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brownian",
		Short: "Generate discrete-time Brownian motion trajectories",
		Long: `brownian simulates Brownian motion as a Gaussian random walk.

  walk2d  one particle's (x, y) positions over fixed time steps
  paths   several independent displacement paths sampled over [0, T]

Trajectories are written as CSV or JSON under a unique file name, ready
for plotting. Settings come from defaults, an INI or YAML config file,
BROWNIAN_* environment variables and flags, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (INI such as configuration.txt, or .yaml)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.Int64("seed", 0, "Random seed (0 = unseeded, different output every run)")
	flags.String("out-dir", "", "Directory for generated files")
	flags.String("format", "", "Output format: csv or json")
	flags.String("naming", "", "Unique file naming: timestamp or uuid")
	flags.Bool("stdout", false, "Write the trajectory to stdout instead of a file")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newWalk2DCmd(),
		newPathsCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "brownian version %s\n", version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
