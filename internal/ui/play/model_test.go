package play

import (
	"testing"

	"oqa/internal/dataset"
	"oqa/internal/oracle"
)

func gameFixture(t *testing.T) (dataset.Table, *oracle.Oracle) {
	t.Helper()
	table := dataset.Table{
		"0000": {"color": "red", "shape": "cube"},
		"0001": {"color": "red", "shape": "ball"},
		"0002": {"color": "blue", "shape": "cube"},
		"0003": {"color": "blue", "shape": "ball"},
	}
	orc, err := oracle.New(table)
	if err != nil {
		t.Fatalf("build oracle: %v", err)
	}
	return table, orc
}

// TestAskNarrowsCandidates verifies asking filters to the target's answer.
func TestAskNarrowsCandidates(t *testing.T) {
	table, orc := gameFixture(t)
	m := New(table, orc, Options{Seed: 1, NoColor: true})
	if len(m.candidates) != 4 {
		t.Fatalf("expected 4 initial candidates, got %d", len(m.candidates))
	}
	m = m.ask("color")
	if len(m.candidates) != 2 {
		t.Fatalf("expected 2 candidates after color, got %d", len(m.candidates))
	}
	if !m.asked["color"] {
		t.Fatalf("color should be marked asked")
	}
	m = m.ask("shape")
	if len(m.candidates) != 1 {
		t.Fatalf("expected identification, got %d candidates", len(m.candidates))
	}
	if !m.finished {
		t.Fatalf("game should be finished")
	}
	if m.candidates[0] != m.target {
		t.Fatalf("identified %s, target was %s", m.candidates[0], m.target)
	}
}

// TestAskIgnoresRepeatsAndUnknown verifies asked/blank attributes are no-ops.
func TestAskIgnoresRepeatsAndUnknown(t *testing.T) {
	table, orc := gameFixture(t)
	m := New(table, orc, Options{Seed: 1, NoColor: true})
	m = m.ask("color")
	before := len(m.candidates)
	m = m.ask("color")
	if len(m.candidates) != before {
		t.Fatalf("repeat ask should not change candidates")
	}
	m = m.ask("")
	if len(m.candidates) != before {
		t.Fatalf("blank ask should not change candidates")
	}
}

// TestExpectedBitsBalancedSplit verifies the expected posterior entropy.
func TestExpectedBitsBalancedSplit(t *testing.T) {
	table, orc := gameFixture(t)
	m := New(table, orc, Options{Seed: 1, NoColor: true})
	// Both attributes split 4 candidates into two pairs: expected 1 bit.
	if got := m.expectedBits("color"); got != 1.0 {
		t.Fatalf("expected 1.0 bits, got %v", got)
	}
}

// TestViewRendersWithoutColor verifies the no-color view renders all lines.
func TestViewRendersWithoutColor(t *testing.T) {
	table, orc := gameFixture(t)
	m := New(table, orc, Options{Seed: 1, NoColor: true})
	view := m.View()
	if view == "" {
		t.Fatalf("expected non-empty view")
	}
}
