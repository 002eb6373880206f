package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oqa/internal/spec"
)

func writeFixture(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "items.json")
	items := `{"0000": {"color": "red"}, "0001": {"color": "blue"}}`
	if err := os.WriteFile(itemsPath, []byte(items), 0o644); err != nil {
		t.Fatalf("write items: %v", err)
	}
	configPath := filepath.Join(dir, ".oqa.yml")
	payload := `version: 1
dataset:
  name: "kary-test"
  items: "items.json"
run:
  targets: 2
  seed: 7
`
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir, configPath
}

// TestLoadAppliesDefaults verifies normalization fills omitted fields.
func TestLoadAppliesDefaults(t *testing.T) {
	_, configPath := writeFixture(t)
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Run.Model != DefaultOracleModel {
		t.Fatalf("expected default model, got %q", cfg.Run.Model)
	}
	if cfg.Output.Dir != DefaultOutputDir {
		t.Fatalf("expected default output dir, got %q", cfg.Output.Dir)
	}
	if cfg.Run.Targets != 2 {
		t.Fatalf("expected targets 2, got %d", cfg.Run.Targets)
	}
}

// TestLoadRejectsUnknownFields verifies strict YAML decoding.
func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".oqa.yml")
	payload := `version: 1
dataset:
  items: "items.json"
surprise: true
`
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(configPath); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

// TestValidateMissingItems verifies the items path is required and checked.
func TestValidateMissingItems(t *testing.T) {
	dir := t.TempDir()
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	err := Validate(&cfg, dir)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "dataset.items") {
		t.Fatalf("expected dataset.items issue, got %q", err.Error())
	}
}

// TestValidateBadColor verifies plot colors must be hex.
func TestValidateBadColor(t *testing.T) {
	dir, configPath := writeFixture(t)
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Plot.Colors = map[string]string{"Oracle (Optimal)": "violet"}
	err = Validate(&cfg, dir)
	if err == nil || !strings.Contains(err.Error(), "plot.colors") {
		t.Fatalf("expected plot.colors issue, got %v", err)
	}
}

// TestNormalizeDatasetNameFromItems verifies the name default.
func TestNormalizeDatasetNameFromItems(t *testing.T) {
	cfg := spec.Config{Version: 1}
	cfg.Dataset.Items = "data/kary300_Items.json"
	Normalize(&cfg)
	if cfg.Dataset.Name != "kary300_Items" {
		t.Fatalf("unexpected dataset name %q", cfg.Dataset.Name)
	}
}

// TestScaffoldWritesOnce verifies init is idempotent.
func TestScaffoldWritesOnce(t *testing.T) {
	dir := t.TempDir()
	written, err := Scaffold(dir)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 files, got %v", written)
	}
	if _, err := Load(ConfigPath(dir)); err != nil {
		t.Fatalf("scaffolded config should validate: %v", err)
	}
	again, err := Scaffold(dir)
	if err != nil {
		t.Fatalf("second scaffold: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no files on second scaffold, got %v", again)
	}
}
