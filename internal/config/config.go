// Package config loads practicegraph configuration from defaults, global
// and local config files, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the practicegraph CLI configuration.
type Configuration struct {
	DataPath   string   `koanf:"data_path" validate:"required"`       // Default practices document path
	Categories []string `koanf:"categories" validate:"min=1"`         // Allowed category set
	MaxErrors  int      `koanf:"max_errors" validate:"min=0,max=500"` // Cap on printed errors, 0 = unlimited
	Color      bool     `koanf:"color"`                               // Colored output (also disabled by NO_COLOR / --no-color)
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".practicegraph", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("PRACTICEGRAPH_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.DataPath = expandHomePath(cfg.DataPath)

	// NO_COLOR disables colored output regardless of config
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: PRACTICEGRAPH_MAX_ERRORS -> max_errors
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PRACTICEGRAPH_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
