package runner

import (
	"path/filepath"
	"testing"
)

func TestOutputPaths(t *testing.T) {
	root := t.TempDir()
	paths, err := NewOutputPaths(root, "kary300", "20240102T030405Z-deadbeef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectedRunDir := filepath.Join(root, "kary300", "20240102T030405Z-deadbeef")
	if paths.RunDir() != expectedRunDir {
		t.Fatalf("unexpected run dir: %q", paths.RunDir())
	}
	if paths.ResultsPath() != filepath.Join(expectedRunDir, "results.json") {
		t.Fatalf("unexpected results path: %q", paths.ResultsPath())
	}
	if paths.RunsCSVPath() != filepath.Join(expectedRunDir, "runs.csv") {
		t.Fatalf("unexpected runs path: %q", paths.RunsCSVPath())
	}
	if paths.SummaryCSVPath() != filepath.Join(expectedRunDir, "summary.csv") {
		t.Fatalf("unexpected summary path: %q", paths.SummaryCSVPath())
	}
	if paths.PlotPath() != filepath.Join(expectedRunDir, "plot.png") {
		t.Fatalf("unexpected plot path: %q", paths.PlotPath())
	}
}

func TestOutputPathsErrors(t *testing.T) {
	cases := []struct {
		name    string
		root    string
		dataset string
		runID   string
	}{
		{name: "missing-root", root: "", dataset: "kary300", runID: "id"},
		{name: "missing-dataset", root: "out", dataset: "", runID: "id"},
		{name: "missing-run", root: "out", dataset: "kary300", runID: ""},
	}
	for _, tc := range cases {
		if _, err := NewOutputPaths(tc.root, tc.dataset, tc.runID); err == nil {
			t.Fatalf("expected error for %s", tc.name)
		}
	}
}
