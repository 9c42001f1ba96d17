// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name read by ParseEnv.
const EnvPrefix = "REDUCER_"

// ParseEnv loads configuration from REDUCER_-prefixed environment variables
// into target, which must be a pointer to a struct with env tags.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
