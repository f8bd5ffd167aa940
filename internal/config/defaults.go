package config

import "github.com/mararual/practicegraph/internal/practices"

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"data_path":  "./data/practices.json",
		"categories": practices.DefaultCategories(),
		"max_errors": 0,
		"color":      true,
	}
}
