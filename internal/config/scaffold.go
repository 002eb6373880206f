package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

dataset:
  name: "kary-example"
  items: "data/items.json"

run:
  model: "Oracle (Optimal)"
  targets: 30
  seed: 7

output:
  dir: "out"

plot:
  title: "K-ary Example Dataset: Entropy (in bits) Across Steps"
  order:
    - "GPT 5"
    - "Gemini 2.5 Pro"
    - "Claude Sonnet 4.5"
    - "Grok 4"
    - "Oracle (Optimal)"
  colors:
    "GPT 5": "#003153"
    "Gemini 2.5 Pro": "#ffa500"
    "Claude Sonnet 4.5": "#008000"
    "Grok 4": "#ff0000"
    "Oracle (Optimal)": "#ee82ee"
`

const defaultItems = `{
  "0000": {"color": "red", "shape": "cube", "size": "small", "material": "wood"},
  "0001": {"color": "red", "shape": "cube", "size": "large", "material": "steel"},
  "0002": {"color": "red", "shape": "ball", "size": "small", "material": "steel"},
  "0003": {"color": "blue", "shape": "ball", "size": "small", "material": "wood"},
  "0004": {"color": "blue", "shape": "cone", "size": "medium", "material": "glass"},
  "0005": {"color": "green", "shape": "cone", "size": "large", "material": "wood"},
  "0006": {"color": "green", "shape": "cube", "size": "medium", "material": "glass"},
  "0007": {"color": "blue", "shape": "ball", "size": "large", "material": "steel"}
}
`

// Scaffold writes a starter .oqa.yml and example item table under root.
// Existing files are left untouched.
func Scaffold(root string) ([]string, error) {
	written := make([]string, 0, 2)

	configPath := ConfigPath(root)
	created, err := writeIfAbsent(configPath, defaultConfig)
	if err != nil {
		return written, err
	}
	if created {
		written = append(written, configPath)
	}

	itemsPath := filepath.Join(root, "data", "items.json")
	if err := os.MkdirAll(filepath.Dir(itemsPath), 0o755); err != nil {
		return written, fmt.Errorf("create data dir: %w", err)
	}
	created, err = writeIfAbsent(itemsPath, defaultItems)
	if err != nil {
		return written, err
	}
	if created {
		written = append(written, itemsPath)
	}
	return written, nil
}

func writeIfAbsent(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
