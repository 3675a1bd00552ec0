// Package config provides unified configuration loading for the brownian CLI.
// Order: defaults -> file (INI or YAML) -> environment variables -> flags
// (flags are applied by the CLI).
//
// The INI layout is the one used by configuration.txt:
//
//	[2d_simulation_parameters]
//	noOfTimeSteps = 1000
//	stepSize = 1
//	sigma = 1
//
//	[time_space_parameters]
//	noOfSamplePoints = 1000
//	noOfBrownianMotions = 5
//	timeStep = 1.0
//
// Numeric generator parameters are only coerced here; their ranges are
// validated by the motion package.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/brownian/export"
	"github.com/katalvlaran/brownian/logging"
	"github.com/katalvlaran/brownian/motion"
	"github.com/katalvlaran/brownian/naming"
)

var (
	// ErrBadValue indicates a configuration value that could not be coerced
	// to the expected type.
	ErrBadValue = errors.New("config: invalid value")

	// ErrInvalid indicates a well-typed but unsupported setting.
	ErrInvalid = errors.New("config: invalid setting")
)

// Config contains all brownian configuration settings.
type Config struct {
	// Seed fixes the random stream; 0 means a fresh unseeded stream per run.
	Seed int64 `yaml:"seed" env:"SEED"`

	// Walk2D holds the 2D positional walk parameters.
	Walk2D Walk2DConfig `yaml:"walk2d" envPrefix:"WALK2D_"`

	// Paths holds the multi-path generator parameters.
	Paths PathsConfig `yaml:"paths" envPrefix:"PATHS_"`

	// Output controls where and how trajectories are written.
	Output OutputConfig `yaml:"output" envPrefix:"OUTPUT_"`

	// Logging controls CLI log verbosity.
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
}

// Walk2DConfig mirrors motion.Walk2DParams.
type Walk2DConfig struct {
	Steps    int     `yaml:"steps" env:"STEPS"`
	StepSize float64 `yaml:"step_size" env:"STEP_SIZE"`
	Sigma    float64 `yaml:"sigma" env:"SIGMA"`
}

// PathsConfig mirrors motion.PathParams.
type PathsConfig struct {
	Samples   int     `yaml:"samples" env:"SAMPLES"`
	Paths     int     `yaml:"paths" env:"PATHS"`
	TotalTime float64 `yaml:"total_time" env:"TOTAL_TIME"`
}

// OutputConfig configures artifact export.
type OutputConfig struct {
	// Dir is the directory artifacts are written to.
	Dir string `yaml:"dir" env:"DIR"`
	// Format is "csv" or "json".
	Format string `yaml:"format" env:"FORMAT"`
	// Naming is the unique-name scheme: "timestamp" or "uuid".
	Naming string `yaml:"naming" env:"NAMING"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
}

// Default returns a Config with the built-in simulation defaults.
func Default() *Config {
	return &Config{
		Seed: 0,
		Walk2D: Walk2DConfig{
			Steps:    1000,
			StepSize: 1,
			Sigma:    1,
		},
		Paths: PathsConfig{
			Samples:   1000,
			Paths:     1,
			TotalTime: 1.0,
		},
		Output: OutputConfig{
			Dir:    "output-images",
			Format: string(export.CSV),
			Naming: string(naming.Timestamp),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults, the optional file at path, and the
// environment, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the ambient settings (output, naming, logging).
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty: %w", ErrInvalid)
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w: %w", ErrInvalid, err)
	}
	if _, err := naming.ParseScheme(c.Output.Naming); err != nil {
		return fmt.Errorf("output.naming: %w: %w", ErrInvalid, err)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q (valid: %v): %w", c.Logging.Level, logging.Levels, ErrInvalid)
	}

	return nil
}

// WalkParams maps the walk2d section to motion parameters.
func (c *Config) WalkParams() motion.Walk2DParams {
	return motion.Walk2DParams{
		StepCount: c.Walk2D.Steps,
		StepSize:  c.Walk2D.StepSize,
		Sigma:     c.Walk2D.Sigma,
	}
}

// PathParams maps the paths section to motion parameters.
func (c *Config) PathParams() motion.PathParams {
	return motion.PathParams{
		SampleCount: c.Paths.Samples,
		PathCount:   c.Paths.Paths,
		TotalTime:   c.Paths.TotalTime,
	}
}
