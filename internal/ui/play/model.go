// Package play implements the interactive terminal version of the
// question-asking game: the player asks one attribute per turn to isolate
// a hidden target, with the oracle's recommendation shown alongside.
package play

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"oqa/internal/dataset"
	"oqa/internal/oracle"
)

// Model renders the game UI using Bubble Tea.
type Model struct {
	items      dataset.Table
	oracle     *oracle.Oracle
	target     string
	candidates []string
	asked      map[string]bool
	history    []question
	table      table.Model
	finished   bool
	noColor    bool
}

// question is one asked attribute and the revealed answer.
type question struct {
	attr   string
	answer string
}

// Options configures the game UI model.
type Options struct {
	Seed    int64
	NoColor bool
}

// New constructs a game model with a hidden target sampled from the table.
func New(items dataset.Table, orc *oracle.Oracle, opts Options) Model {
	ids := items.IDs()
	rng := rand.New(rand.NewSource(opts.Seed))
	target := ids[rng.Intn(len(ids))]

	t := table.New(
		table.WithColumns(attributeColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	m := Model{
		items:      items,
		oracle:     orc,
		target:     target,
		candidates: ids,
		asked:      map[string]bool{},
		table:      t,
		noColor:    opts.NoColor,
	}
	m.refreshRows()
	return m
}

// Init is a no-op: the game is purely key-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-6, 1))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.finished {
				return m, tea.Quit
			}
			return m.ask(m.selectedAttribute()), nil
		case "r":
			if m.finished {
				return m, tea.Quit
			}
			return m.ask(m.oracle.BestAttribute(m.candidates)), nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the game UI.
func (m Model) View() string {
	header := renderHeader(len(m.candidates), len(m.history), m.noColor)
	historyLine := renderHistory(m.history, m.noColor)
	if m.finished {
		return lipgloss.JoinVertical(lipgloss.Left,
			header, historyLine, renderOutcome(m.target, m.candidates, m.noColor))
	}
	hint := renderHint(m.oracle.BestAttribute(m.candidates), m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left,
		header, historyLine, m.table.View(), hint)
}

// ask applies one attribute question against the hidden target.
func (m Model) ask(attr string) Model {
	if attr == "" || m.asked[attr] {
		return m
	}
	answer := m.items[m.target][attr]
	next := make([]string, 0, len(m.candidates))
	for _, id := range m.candidates {
		if m.items[id][attr] == answer {
			next = append(next, id)
		}
	}
	m.candidates = next
	m.asked[attr] = true
	m.history = append(m.history, question{attr: attr, answer: answer})
	if len(m.candidates) <= 1 || m.oracle.BestAttribute(m.candidates) == "" {
		m.finished = true
	}
	m.refreshRows()
	return m
}

// selectedAttribute returns the attribute on the cursor row.
func (m Model) selectedAttribute() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

// refreshRows rebuilds the attribute table for the current candidate set.
func (m *Model) refreshRows() {
	recommended := m.oracle.BestAttribute(m.candidates)
	rows := make([]table.Row, 0, len(m.items.AttributeNames()))
	for _, attr := range m.items.AttributeNames() {
		if m.asked[attr] {
			continue
		}
		rows = append(rows, attributeRow(attr, m.expectedBits(attr), attr == recommended))
	}
	m.table.SetRows(rows)
}

// expectedBits is the expected posterior entropy after asking attr on the
// current candidate set, under a uniform prior over candidates.
func (m Model) expectedBits(attr string) float64 {
	buckets := map[string]int{}
	for _, id := range m.candidates {
		buckets[m.items[id][attr]]++
	}
	n := float64(len(m.candidates))
	expected := 0.0
	for _, size := range buckets {
		expected += (float64(size) / n) * oracle.Bits(size)
	}
	return expected
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
