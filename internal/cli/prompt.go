package cli

import (
	"flag"
	"fmt"
	"io"

	"oqa/internal/config"
	"oqa/internal/dataset"
	"oqa/internal/prompt"
)

func runPrompt(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		specPath := fs.String("spec", config.ConfigFileName, "Path to .oqa.yml")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
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

		text, err := prompt.RenderGamePrompt(prompt.DataFromTable(table))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render prompt: %v\n", err)
			return ExitError
		}
		fmt.Fprint(stdout, text)
		return ExitOK
	}
}
