// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every toolbox environment variable.
const EnvPrefix = "TOOLBOX_"

// ParseEnv loads TOOLBOX_-prefixed environment variables into target.
//
// Struct tags name the variable without the prefix, so `env:"HTTP_ADDR"`
// reads TOOLBOX_HTTP_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
