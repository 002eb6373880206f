package cli

import (
	"flag"
	"fmt"
	"io"

	"oqa/internal/config"
	"oqa/internal/dataset"
)

func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Invalid config: %v\n", err)
			return ExitError
		}
		repoRoot := config.RepoRootFromConfigPath(*specPath)
		table, err := dataset.LoadTable(config.ResolvePath(repoRoot, cfg.Dataset.Items))
		if err != nil {
			fmt.Fprintf(stderr, "Invalid item table: %v\n", err)
			return ExitError
		}

		classes := table.Classes()
		duplicated := 0
		for _, class := range classes {
			if len(class.IDs) > 1 {
				duplicated++
			}
		}
		fmt.Fprintf(stdout, "Config OK: dataset %s\n", cfg.Dataset.Name)
		fmt.Fprintf(stdout, "Objects: %d | Attributes: %d | Equivalence classes: %d (%d with duplicates)\n",
			len(table), len(table.AttributeNames()), len(classes), duplicated)
		return ExitOK
	}
}
