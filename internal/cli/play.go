package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"oqa/internal/config"
	"oqa/internal/dataset"
	"oqa/internal/oracle"
	"oqa/internal/ui/play"
)

// isTerminal reports whether the writer is an interactive terminal.
// Overridable seam for tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", config.ConfigFileName, "Path to .oqa.yml")
		seed := fs.Int64("seed", 0, "Target sampling seed (default: current time)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "play requires an interactive terminal")
			return ExitError
		}

		cfg, err := config.Load(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		repoRoot := config.RepoRootFromConfigPath(*specPath)
		table, err := dataset.LoadTable(config.ResolvePath(repoRoot, cfg.Dataset.Items))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load item table: %v\n", err)
			return ExitError
		}
		orc, err := oracle.New(table)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to build oracle: %v\n", err)
			return ExitError
		}

		gameSeed := *seed
		if gameSeed == 0 {
			gameSeed = time.Now().UnixNano()
		}
		model := play.New(table, orc, play.Options{Seed: gameSeed, NoColor: *noColor})
		program := tea.NewProgram(model, tea.WithOutput(stdout))
		if _, err := program.Run(); err != nil {
			fmt.Fprintf(stderr, "Game failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
