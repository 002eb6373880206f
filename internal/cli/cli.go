package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  oqa <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"oqa <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .oqa.yml and an example item table", []string{
		"oqa init [--dir <path>]",
	}, runInit),
	command("validate", "Validate .oqa.yml and the item table", []string{
		"oqa validate [--spec <path>]",
	}, runValidate),
	command("run", "Simulate the oracle and write run artifacts", []string{
		"oqa run [--spec <path>] [--output-dir <path>]",
	}, runRun),
	command("summarize", "Aggregate per-run rows into a summary CSV", []string{
		"oqa summarize --runs <runs.csv> [--output <summary.csv>]",
	}, runSummarize),
	command("plot", "Regenerate the entropy chart from a summary CSV", []string{
		"oqa plot --summary <summary.csv> [--spec <path>] [--output <plot.png>]",
	}, runPlot),
	command("prompt", "Print the game prompt for the configured item table", []string{
		"oqa prompt [--spec <path>]",
	}, runPrompt),
	command("export", "Export per-run rows into a DuckDB file", []string{
		"oqa export --runs <runs.csv> --db <runs.duckdb> [--spec <path>]",
	}, runExport),
	command("play", "Play the question-asking game in the terminal", []string{
		"oqa play [--spec <path>] [--seed <n>]",
	}, runPlay),
}
