package runner

import "time"

// Results is the run manifest persisted as results.json.
type Results struct {
	RunID      string          `json:"run_id"`
	Dataset    DatasetMetadata `json:"dataset"`
	Model      string          `json:"model"`
	Seed       int64           `json:"seed"`
	Targets    []string        `json:"targets"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Summary    RunSummary      `json:"summary"`
}

// DatasetMetadata identifies the item table a run was computed from.
type DatasetMetadata struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Objects     int    `json:"objects"`
	Attributes  int    `json:"attributes"`
	Classes     int    `json:"classes"`
	Fingerprint string `json:"fingerprint"`
}

// RunSummary aggregates the oracle trajectories of one run.
type RunSummary struct {
	TargetsSimulated  int     `json:"targets_simulated"`
	MaxSteps          int     `json:"max_steps"`
	PriorBits         float64 `json:"prior_bits"`
	ExpectedQuestions float64 `json:"expected_questions"`
	TargetsResolved   int     `json:"targets_resolved"`
}
