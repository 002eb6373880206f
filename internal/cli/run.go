package cli

import (
	"flag"
	"fmt"
	"io"

	"oqa/internal/config"
	"oqa/internal/runner"
	"oqa/internal/spec"
)

var runAndWrite = runner.RunAndWrite

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", config.ConfigFileName, "Path to .oqa.yml")
		outputDir := fs.String("output-dir", "", "Override output directory")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := config.Load(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		results, paths, err := runAndWrite(cfg, runner.RunParams{
			RepoRoot:  config.RepoRootFromConfigPath(*specPath),
			OutputDir: *outputDir,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed: %d targets, optimal E[questions] = %.3f\n",
			results.RunID, results.Summary.TargetsSimulated, results.Summary.ExpectedQuestions)
		fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
		fmt.Fprintf(stdout, "Runs: %s\n", paths.RunsCSVPath())
		fmt.Fprintf(stdout, "Summary: %s\n", paths.SummaryCSVPath())
		fmt.Fprintf(stdout, "Plot: %s\n", paths.PlotPath())
		return ExitOK
	}
}

// loadPlotConfig loads the plot section, tolerating a missing config file.
func loadPlotConfig(specPath string) spec.PlotConfig {
	cfg, err := config.Load(specPath)
	if err != nil {
		return spec.PlotConfig{}
	}
	return cfg.Plot
}
