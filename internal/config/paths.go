package config

import "path/filepath"

// ConfigFileName is the default config file at the dataset bundle root.
const ConfigFileName = ".oqa.yml"

// ConfigPath returns the config file path under a bundle root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// RepoRootFromConfigPath derives the bundle root from a config file path.
func RepoRootFromConfigPath(configPath string) string {
	return filepath.Dir(configPath)
}
