package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"oqa/internal/plot"
	"oqa/internal/results"
	"oqa/internal/spec"
)

// RunAndWrite executes a run and writes its artifacts: results.json,
// runs.csv, summary.csv, and the regenerated entropy chart.
func RunAndWrite(cfg spec.Config, params RunParams) (Results, OutputPaths, error) {
	manifest, rows, err := Run(cfg, params)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}

	outputDir := params.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(params.RepoRoot, cfg.Output.Dir)
	}
	paths, err := NewOutputPaths(outputDir, cfg.Dataset.Name, manifest.RunID)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return Results{}, OutputPaths{}, fmt.Errorf("create output dir: %w", err)
	}

	if err := writeJSON(paths.ResultsPath(), manifest); err != nil {
		return Results{}, OutputPaths{}, err
	}
	if err := writeRunsCSV(paths.RunsCSVPath(), rows); err != nil {
		return Results{}, OutputPaths{}, err
	}
	summary := results.Summarize(rows)
	if err := writeSummaryCSV(paths.SummaryCSVPath(), summary); err != nil {
		return Results{}, OutputPaths{}, err
	}
	if err := plot.RenderFile(summary, cfg.Plot, paths.PlotPath()); err != nil {
		return Results{}, OutputPaths{}, err
	}
	return manifest, paths, nil
}

// writeJSON writes the run manifest as pretty JSON.
func writeJSON(path string, manifest Results) error {
	payload, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeRunsCSV(path string, rows []results.RunRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create runs csv: %w", err)
	}
	defer f.Close()
	if err := results.WriteRunCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}

func writeSummaryCSV(path string, rows []results.SummaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary csv: %w", err)
	}
	defer f.Close()
	if err := results.WriteSummaryCSV(f, rows); err != nil {
		return err
	}
	return f.Close()
}
