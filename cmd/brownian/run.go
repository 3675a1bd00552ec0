package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/brownian/config"
	"github.com/katalvlaran/brownian/export"
	"github.com/katalvlaran/brownian/logging"
	"github.com/katalvlaran/brownian/motion"
	"github.com/katalvlaran/brownian/naming"
	"github.com/spf13/cobra"
)

// loadConfig resolves defaults -> file -> env -> global flags and validates
// the ambient settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("out-dir") {
		cfg.Output.Dir, _ = flags.GetString("out-dir")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("naming") {
		cfg.Output.Naming, _ = flags.GetString("naming")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// generatorOptions turns the configured seed into generator options.
func generatorOptions(cfg *config.Config) []motion.Option {
	if cfg.Seed == 0 {
		return nil
	}
	return []motion.Option{motion.WithSeed(cfg.Seed)}
}

// emit writes one artifact through write, either to stdout or to a uniquely
// named file under cfg.Output.Dir. It returns the file path ("" for stdout).
func emit(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, prefix string, write func(io.Writer, export.Format) error) (string, error) {
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return "", err
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		return "", write(cmd.OutOrStdout(), format)
	}

	scheme, err := naming.ParseScheme(cfg.Output.Naming)
	if err != nil {
		return "", err
	}
	name, err := naming.New(scheme).Name(prefix, format.Ext())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(cfg.Output.Dir, name)

	// Never overwrite an earlier artifact that resolved to the same name.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("output file %s already exists (use --naming uuid for concurrent runs): %w", path, err)
		}
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, format); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.Debug("artifact written", "path", path, "format", format)
	fmt.Fprintln(cmd.OutOrStdout(), path)

	return path, nil
}

// newLogger builds the CLI logger on the command's error stream.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}
