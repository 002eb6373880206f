package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"oqa/internal/store"
)

// TestExportCommand verifies runs land in the DuckDB file.
func TestExportCommand(t *testing.T) {
	specPath := scaffoldFixture(t)
	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	dbPath := filepath.Join(dir, "runs.duckdb")
	writeFile(t, runsPath, strings.Join([]string{
		"model,run_id,step,entropy_bits",
		"Oracle (Optimal),0000,1,3.000000",
		"Oracle (Optimal),0000,2,1.000000",
		"GPT 5,s1,1,3.000000",
		"",
	}, "\n"))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"export", "--runs", runsPath, "--db", dbPath, "--spec", specPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Exported 3 rows") {
		t.Fatalf("expected confirmation, got %q", stdout.String())
	}

	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()
	var runCount int
	if err := db.QueryRow("SELECT count(*) FROM runs WHERE dataset = 'kary-example'").Scan(&runCount); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runCount != 2 {
		t.Fatalf("expected 2 runs, got %d", runCount)
	}
}

// TestExportRequiresFlags verifies the missing-flag usage error.
func TestExportRequiresFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"export", "--runs", "runs.csv"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(stderr.String(), "Missing --runs or --db") {
		t.Fatalf("expected missing flag error, got %q", stderr.String())
	}
}
