package cli

import (
	"flag"
	"fmt"
	"io"

	"oqa/internal/config"
)

func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dir := fs.String("dir", ".", "Directory to scaffold into")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		written, err := config.Scaffold(*dir)
		if err != nil {
			fmt.Fprintf(stderr, "Scaffold failed: %v\n", err)
			return ExitError
		}
		if len(written) == 0 {
			fmt.Fprintln(stdout, "Nothing to do: files already exist")
			return ExitOK
		}
		for _, path := range written {
			fmt.Fprintf(stdout, "Wrote %s\n", path)
		}
		return ExitOK
	}
}
