// Package config reads the runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds the environment overrides understood by the app.
type Settings struct {
	// Lang forces the UI language instead of detecting it from the system locale.
	Lang string `env:"BOARDGAME_LANG"`
	// Debug enables verbose logging of intents and engine transitions.
	Debug bool `env:"BOARDGAME_DEBUG" envDefault:"false"`
}

// Load parses Settings from the process environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}

// LoadFrom parses Settings from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: vars}); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}
