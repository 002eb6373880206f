package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"oqa/internal/spec"
)

// Issue captures a validation problem in a config file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks a normalized config against the repo root.
func Validate(cfg *spec.Config, repoRoot string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Dataset.Items == "" {
		collector.add("dataset.items", "is required")
	} else if err := requireFile(repoRoot, cfg.Dataset.Items); err != nil {
		collector.add("dataset.items", err.Error())
	}
	if cfg.Dataset.Name == "" {
		collector.add("dataset.name", "is required")
	}

	if cfg.Run.Targets < 1 {
		collector.add("run.targets", "must be at least 1")
	}
	if cfg.Run.Model == "" {
		collector.add("run.model", "is required")
	}
	if cfg.Run.ModelRuns != "" {
		if err := requireFile(repoRoot, cfg.Run.ModelRuns); err != nil {
			collector.add("run.model_runs", err.Error())
		}
	}

	for model, value := range cfg.Plot.Colors {
		if !validHexColor(value) {
			collector.add("plot.colors."+model, fmt.Sprintf("invalid hex color %q", value))
		}
	}

	return collector.result()
}

// ResolvePath resolves a config-relative path against the repo root.
func ResolvePath(repoRoot, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(repoRoot, path)
}

func requireFile(repoRoot, path string) error {
	resolved := ResolvePath(repoRoot, path)
	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory: %s", path)
	}
	return nil
}

func validHexColor(value string) bool {
	if len(value) != 7 || value[0] != '#' {
		return false
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
