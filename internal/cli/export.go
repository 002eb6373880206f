package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"oqa/internal/config"
	"oqa/internal/dataset"
	"oqa/internal/results"
	"oqa/internal/store"
)

func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		runsPath := fs.String("runs", "", "Path to per-run rows CSV")
		dbPath := fs.String("db", "", "DuckDB output file")
		specPath := fs.String("spec", "", "Optional .oqa.yml for dataset identity")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *runsPath == "" || *dbPath == "" {
			fmt.Fprintln(stderr, "Missing --runs or --db")
			return ExitUsage
		}

		rows, err := results.ReadRunCSVFile(*runsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read runs: %v\n", err)
			return ExitError
		}

		meta := store.ExportMeta{Dataset: "unknown"}
		if *specPath != "" {
			cfg, err := config.Load(*specPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
				return ExitError
			}
			meta.Dataset = cfg.Dataset.Name
			repoRoot := config.RepoRootFromConfigPath(*specPath)
			table, err := dataset.LoadTable(config.ResolvePath(repoRoot, cfg.Dataset.Items))
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load item table: %v\n", err)
				return ExitError
			}
			meta.Fingerprint = store.FingerprintTable(table)
		}

		db, err := store.Open(*dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open database: %v\n", err)
			return ExitError
		}
		defer db.Close()
		if err := store.Export(context.Background(), db, meta, rows); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Exported %d rows to %s\n", len(rows), *dbPath)
		return ExitOK
	}
}
