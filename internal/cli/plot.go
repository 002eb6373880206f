package cli

import (
	"flag"
	"fmt"
	"io"

	"oqa/internal/plot"
	"oqa/internal/results"
)

var renderPlotFile = plot.RenderFile

func runPlot(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		summaryPath := fs.String("summary", "", "Path to summary CSV")
		specPath := fs.String("spec", "", "Optional .oqa.yml for plot styling")
		outputPath := fs.String("output", "plot.png", "Chart output path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *summaryPath == "" {
			fmt.Fprintln(stderr, "Missing --summary")
			return ExitUsage
		}

		rows, err := results.ReadSummaryCSVFile(*summaryPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read summary: %v\n", err)
			return ExitError
		}
		plotCfg := loadPlotConfig(*specPath)
		if err := renderPlotFile(rows, plotCfg, *outputPath); err != nil {
			fmt.Fprintf(stderr, "Failed to render plot: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Plot written to %s\n", *outputPath)
		return ExitOK
	}
}
