package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv,
// e.g. BROWNIAN_WALK2D_STEPS or BROWNIAN_LOG_LEVEL.
const EnvPrefix = "BROWNIAN_"

// ApplyEnv overrides cfg fields whose environment variables are set.
// Unset variables leave the current values untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w: %w", ErrBadValue, err)
	}

	return nil
}
