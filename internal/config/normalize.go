package config

import (
	"path/filepath"
	"strings"

	"oqa/internal/spec"
)

// Normalization defaults.
const (
	DefaultOracleModel = "Oracle (Optimal)"
	DefaultTargets     = 30
	DefaultOutputDir   = "out"
)

// Normalize fills omitted fields with their defaults.
func Normalize(cfg *spec.Config) {
	if cfg.Dataset.Name == "" && cfg.Dataset.Items != "" {
		base := filepath.Base(cfg.Dataset.Items)
		cfg.Dataset.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if cfg.Run.Model == "" {
		cfg.Run.Model = DefaultOracleModel
	}
	if cfg.Run.Targets == 0 {
		cfg.Run.Targets = DefaultTargets
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
	if cfg.Plot.Title == "" {
		cfg.Plot.Title = "Entropy (in bits) Across Steps"
	}
}
