package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"oqa/internal/oracle"
)

// attributeColumns defines the attribute table layout.
func attributeColumns() []table.Column {
	return []table.Column{
		{Title: "Attribute", Width: 18},
		{Title: "Expected bits after asking", Width: 28},
		{Title: "", Width: 12},
	}
}

// attributeRow renders one askable attribute.
func attributeRow(attr string, expectedBits float64, recommended bool) table.Row {
	marker := ""
	if recommended {
		marker = "recommended"
	}
	return table.Row{attr, fmt.Sprintf("%.3f", expectedBits), marker}
}

// renderHeader renders the remaining-candidates line.
func renderHeader(candidates, asked int, noColor bool) string {
	line := fmt.Sprintf("Candidates: %d | Entropy: %.3f bits | Questions asked: %d",
		candidates, oracle.Bits(candidates), asked)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderHistory renders the asked-question trail.
func renderHistory(history []question, noColor bool) string {
	if len(history) == 0 {
		return stylize("No questions asked yet", noColor, lipgloss.Color("242"))
	}
	parts := make([]string, 0, len(history))
	for _, q := range history {
		parts = append(parts, q.attr+"="+q.answer)
	}
	return stylize("Asked: "+strings.Join(parts, " -> "), noColor, lipgloss.Color("242"))
}

// renderHint renders the oracle recommendation and key help.
func renderHint(recommended string, noColor bool) string {
	line := "enter: ask selected | r: ask recommended"
	if recommended != "" {
		line += " (" + recommended + ")"
	}
	line += " | q: quit"
	return stylize(line, noColor, lipgloss.Color("240"))
}

// renderOutcome renders the end-of-game line.
func renderOutcome(target string, candidates []string, noColor bool) string {
	var line string
	if len(candidates) == 1 {
		line = "Identified: " + candidates[0]
	} else {
		line = fmt.Sprintf("Irreducible class of %d objects (%.3f bits floor); target was %s",
			len(candidates), oracle.Bits(len(candidates)), target)
	}
	line += " | press enter or q to exit"
	return stylize(line, noColor, lipgloss.Color("35"))
}

// tableStyles returns the bubbles table styles, optionally colorless.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		styles.Header = lipgloss.NewStyle().Bold(true)
		return styles
	}
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("33"))
	return styles
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
