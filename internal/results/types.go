// Package results holds the tidy benchmark tables: per-run entropy rows and
// the per-step summary consumed by the plot, plus their CSV codecs.
package results

// RunRow is one point of one run's entropy trajectory.
type RunRow struct {
	Model string
	RunID string
	Step  int
	Bits  float64
}

// SummaryRow aggregates one model's entropy at one step across runs.
// Lo and Hi are the mean minus/plus one standard deviation, with the lower
// bound clipped so it never implies negative entropy.
type SummaryRow struct {
	Model string
	Step  int
	Mean  float64
	Std   float64
	Lo    float64
	Hi    float64
}
