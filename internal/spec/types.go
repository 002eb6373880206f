// Package spec defines the .oqa.yml configuration schema.
package spec

// Config is the root benchmark configuration.
type Config struct {
	Version int           `yaml:"version"`
	Dataset DatasetConfig `yaml:"dataset"`
	Run     RunConfig     `yaml:"run"`
	Output  OutputConfig  `yaml:"output"`
	Plot    PlotConfig    `yaml:"plot"`
}

// DatasetConfig locates the item table.
type DatasetConfig struct {
	Name  string `yaml:"name"`
	Items string `yaml:"items"`
}

// RunConfig controls oracle simulation and model-run merging.
type RunConfig struct {
	Model     string `yaml:"model"`
	Targets   int    `yaml:"targets"`
	Seed      int64  `yaml:"seed"`
	ModelRuns string `yaml:"model_runs"`
}

// OutputConfig controls where run artifacts are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// PlotConfig controls the regenerated entropy chart.
type PlotConfig struct {
	Title  string            `yaml:"title"`
	Order  []string          `yaml:"order"`
	Colors map[string]string `yaml:"colors"`
}
