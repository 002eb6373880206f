package results

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summarize aggregates per-run rows into per-model, per-step summary rows.
// Runs of one model may have different lengths: once a run's candidate set
// is irreducible its entropy holds constant, so shorter runs are padded
// with their final value up to the model's longest run. Output is sorted
// by model, then step.
func Summarize(rows []RunRow) []SummaryRow {
	type runKey struct {
		model string
		runID string
	}
	trajectories := map[runKey][]RunRow{}
	for _, row := range rows {
		key := runKey{model: row.Model, runID: row.RunID}
		trajectories[key] = append(trajectories[key], row)
	}

	// Per model: entropy samples per step, after padding each run.
	samples := map[string]map[int][]float64{}
	maxStep := map[string]int{}
	for key, trajectory := range trajectories {
		sort.Slice(trajectory, func(i, j int) bool {
			return trajectory[i].Step < trajectory[j].Step
		})
		if len(trajectory) == 0 {
			continue
		}
		last := trajectory[len(trajectory)-1].Step
		if last > maxStep[key.model] {
			maxStep[key.model] = last
		}
		if samples[key.model] == nil {
			samples[key.model] = map[int][]float64{}
		}
		for _, row := range trajectory {
			samples[key.model][row.Step] = append(samples[key.model][row.Step], row.Bits)
		}
	}
	for key, trajectory := range trajectories {
		if len(trajectory) == 0 {
			continue
		}
		final := trajectory[len(trajectory)-1]
		for step := final.Step + 1; step <= maxStep[key.model]; step++ {
			samples[key.model][step] = append(samples[key.model][step], final.Bits)
		}
	}

	models := make([]string, 0, len(samples))
	for model := range samples {
		models = append(models, model)
	}
	sort.Strings(models)

	summary := make([]SummaryRow, 0, len(rows))
	for _, model := range models {
		for step := 1; step <= maxStep[model]; step++ {
			values := samples[model][step]
			if len(values) == 0 {
				continue
			}
			mean, std := stat.MeanStdDev(values, nil)
			if len(values) < 2 {
				std = 0
			}
			lo := mean - std
			if lo < 0 {
				lo = 0
			}
			summary = append(summary, SummaryRow{
				Model: model,
				Step:  step,
				Mean:  mean,
				Std:   std,
				Lo:    lo,
				Hi:    mean + std,
			})
		}
	}
	return summary
}
