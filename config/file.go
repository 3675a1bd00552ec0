package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"gopkg.in/yaml.v3"
)

// INI section names used by configuration.txt.
const (
	SectionWalk2D  = "2d_simulation_parameters"
	SectionPaths   = "time_space_parameters"
	SectionOutput  = "output"
	SectionLogging = "logging"
	SectionRandom  = "random"
)

// LoadFromFile loads configuration from path on top of Default().
// Files ending in .yaml or .yml are YAML; anything else is INI.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	default:
		err = decodeINI(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// decodeYAML overlays data onto cfg, rejecting unknown fields.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// decodeINI overlays data onto cfg. Section and key names are
// case-insensitive; missing sections and keys keep their current values.
func decodeINI(data []byte, cfg *Config) error {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return err
	}

	if sec, err := f.GetSection(SectionWalk2D); err == nil {
		if err := iniInt(sec, "noOfTimeSteps", &cfg.Walk2D.Steps); err != nil {
			return err
		}
		if err := iniFloat(sec, "stepSize", &cfg.Walk2D.StepSize); err != nil {
			return err
		}
		if err := iniFloat(sec, "sigma", &cfg.Walk2D.Sigma); err != nil {
			return err
		}
	}

	if sec, err := f.GetSection(SectionPaths); err == nil {
		if err := iniInt(sec, "noOfSamplePoints", &cfg.Paths.Samples); err != nil {
			return err
		}
		if err := iniInt(sec, "noOfBrownianMotions", &cfg.Paths.Paths); err != nil {
			return err
		}
		if err := iniFloat(sec, "timeStep", &cfg.Paths.TotalTime); err != nil {
			return err
		}
	}

	if sec, err := f.GetSection(SectionOutput); err == nil {
		iniString(sec, "dir", &cfg.Output.Dir)
		iniString(sec, "format", &cfg.Output.Format)
		iniString(sec, "naming", &cfg.Output.Naming)
	}

	if sec, err := f.GetSection(SectionLogging); err == nil {
		iniString(sec, "level", &cfg.Logging.Level)
	}

	if sec, err := f.GetSection(SectionRandom); err == nil {
		if k, err := sec.GetKey("seed"); err == nil {
			v, err := k.Int64()
			if err != nil {
				return badValue(sec, "seed", k, err)
			}
			cfg.Seed = v
		}
	}

	return nil
}

func iniInt(sec *ini.Section, name string, dst *int) error {
	k, err := sec.GetKey(name)
	if err != nil {
		return nil
	}
	v, err := k.Int()
	if err != nil {
		return badValue(sec, name, k, err)
	}
	*dst = v

	return nil
}

func iniFloat(sec *ini.Section, name string, dst *float64) error {
	k, err := sec.GetKey(name)
	if err != nil {
		return nil
	}
	v, err := k.Float64()
	if err != nil {
		return badValue(sec, name, k, err)
	}
	*dst = v

	return nil
}

func iniString(sec *ini.Section, name string, dst *string) {
	if k, err := sec.GetKey(name); err == nil {
		*dst = k.String()
	}
}

func badValue(sec *ini.Section, name string, k *ini.Key, cause error) error {
	return fmt.Errorf("[%s] %s = %q: %w: %w", sec.Name(), name, k.String(), ErrBadValue, cause)
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
