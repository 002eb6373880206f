package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"oqa/internal/results"
)

func runSummarize(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		runsPath := fs.String("runs", "", "Path to per-run rows CSV")
		outputPath := fs.String("output", "summary.csv", "Summary CSV output path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *runsPath == "" {
			fmt.Fprintln(stderr, "Missing --runs")
			return ExitUsage
		}

		rows, err := results.ReadRunCSVFile(*runsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read runs: %v\n", err)
			return ExitError
		}
		summary := results.Summarize(rows)

		f, err := os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to create output: %v\n", err)
			return ExitError
		}
		defer f.Close()
		if err := results.WriteSummaryCSV(f, summary); err != nil {
			fmt.Fprintf(stderr, "Failed to write summary: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Summary written to %s (%d rows)\n", *outputPath, len(summary))
		return ExitOK
	}
}
