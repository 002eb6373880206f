package runner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputPaths describes filesystem locations for run outputs, keyed by
// dataset name and run id.
type OutputPaths struct {
	Root    string
	Dataset string
	RunID   string
}

// NewOutputPaths validates and constructs output paths metadata.
func NewOutputPaths(root, dataset, runID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is empty")
	}
	if strings.TrimSpace(dataset) == "" {
		return OutputPaths{}, fmt.Errorf("dataset name is empty")
	}
	if strings.TrimSpace(runID) == "" {
		return OutputPaths{}, fmt.Errorf("run ID is empty")
	}
	return OutputPaths{
		Root:    root,
		Dataset: dataset,
		RunID:   runID,
	}, nil
}

// RunDir returns the directory for a specific run.
func (o OutputPaths) RunDir() string {
	return filepath.Join(o.Root, o.Dataset, o.RunID)
}

// ResultsPath returns the path to the run manifest.
func (o OutputPaths) ResultsPath() string {
	return filepath.Join(o.RunDir(), "results.json")
}

// RunsCSVPath returns the path to the per-run entropy rows.
func (o OutputPaths) RunsCSVPath() string {
	return filepath.Join(o.RunDir(), "runs.csv")
}

// SummaryCSVPath returns the path to the per-step summary table.
func (o OutputPaths) SummaryCSVPath() string {
	return filepath.Join(o.RunDir(), "summary.csv")
}

// PlotPath returns the path to the regenerated entropy chart.
func (o OutputPaths) PlotPath() string {
	return filepath.Join(o.RunDir(), "plot.png")
}
