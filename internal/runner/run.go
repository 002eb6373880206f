package runner

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"oqa/internal/config"
	"oqa/internal/dataset"
	"oqa/internal/oracle"
	"oqa/internal/results"
	"oqa/internal/spec"
	"oqa/internal/store"
)

// RunParams carries caller-side overrides for a run.
type RunParams struct {
	RepoRoot  string
	OutputDir string
}

// Run loads the dataset, builds the oracle, simulates the sampled targets,
// and merges any pre-recorded model runs. It is deterministic for a fixed
// config: target sampling uses the configured seed.
func Run(cfg spec.Config, params RunParams) (Results, []results.RunRow, error) {
	table, err := dataset.LoadTable(config.ResolvePath(params.RepoRoot, cfg.Dataset.Items))
	if err != nil {
		return Results{}, nil, err
	}
	orc, err := oracle.New(table)
	if err != nil {
		return Results{}, nil, err
	}

	runID, err := NewRunID()
	if err != nil {
		return Results{}, nil, err
	}
	startedAt := time.Now().UTC()

	targets := sampleTargets(table.IDs(), cfg.Run.Targets, cfg.Run.Seed)
	rows := make([]results.RunRow, 0, len(targets)*(len(table.AttributeNames())+1))
	summary := RunSummary{
		TargetsSimulated:  len(targets),
		PriorBits:         oracle.Bits(len(table)),
		ExpectedQuestions: orc.ExpectedQuestions(),
	}
	for _, target := range targets {
		trajectory, err := orc.SimulateTarget(target)
		if err != nil {
			return Results{}, nil, fmt.Errorf("simulate target %s: %w", target, err)
		}
		for _, step := range trajectory.Steps {
			rows = append(rows, results.RunRow{
				Model: cfg.Run.Model,
				RunID: target,
				Step:  step.N,
				Bits:  step.Bits,
			})
		}
		if len(trajectory.Steps) > summary.MaxSteps {
			summary.MaxSteps = len(trajectory.Steps)
		}
		if trajectory.Floor() == 0 {
			summary.TargetsResolved++
		}
	}

	if cfg.Run.ModelRuns != "" {
		modelRows, err := results.ReadRunCSVFile(config.ResolvePath(params.RepoRoot, cfg.Run.ModelRuns))
		if err != nil {
			return Results{}, nil, err
		}
		rows = append(rows, modelRows...)
	}

	manifest := Results{
		RunID: runID,
		Dataset: DatasetMetadata{
			Name:        cfg.Dataset.Name,
			Path:        cfg.Dataset.Items,
			Objects:     len(table),
			Attributes:  len(table.AttributeNames()),
			Classes:     len(table.Classes()),
			Fingerprint: store.FingerprintTable(table),
		},
		Model:      cfg.Run.Model,
		Seed:       cfg.Run.Seed,
		Targets:    targets,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		Summary:    summary,
	}
	return manifest, rows, nil
}

// sampleTargets draws count targets without replacement from a seeded PRNG.
// The selection is returned in id order for stable output files.
func sampleTargets(ids []string, count int, seed int64) []string {
	if count >= len(ids) {
		return ids
	}
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(ids))
	selected := make([]string, 0, count)
	for _, index := range perm[:count] {
		selected = append(selected, ids[index])
	}
	sort.Strings(selected)
	return selected
}
