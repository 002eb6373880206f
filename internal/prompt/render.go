// Package prompt renders the game prompt shipped with the dataset bundles:
// the instructions given to an agent playing the optimal-question-asking
// game over a closed object table.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"oqa/internal/dataset"
)

// GameData feeds the game prompt template.
type GameData struct {
	Objects      int
	Attributes   []AttributeMenu
	MaxQuestions int
}

// AttributeMenu lists one askable attribute and its value domain.
type AttributeMenu struct {
	Name   string
	Values []string
}

var gameTemplate = template.Must(template.New("game").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`You are playing an object identification game.

There are {{.Objects}} objects in a closed world. One of them has been chosen
as the hidden target. Each object is fully described by the attributes below.

On each turn, ask about exactly ONE attribute by name. You will be told the
target's value for that attribute. Objects whose value differs are eliminated.

Askable attributes:
{{range .Attributes}}  - {{.Name}}: {{join .Values ", "}}
{{end}}
You have at most {{.MaxQuestions}} questions. Identify the target in as few
questions as possible. Reply with only the attribute name you want to ask.
`))

// RenderGamePrompt renders the game prompt for the given data.
func RenderGamePrompt(data GameData) (string, error) {
	if data.Objects < 1 {
		return "", fmt.Errorf("render game prompt: object count must be positive")
	}
	var builder strings.Builder
	if err := gameTemplate.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("render game prompt: %w", err)
	}
	return builder.String(), nil
}

// DataFromTable derives prompt data from an item table. The question budget
// is the attribute count: no optimal policy ever asks an attribute twice.
func DataFromTable(table dataset.Table) GameData {
	names := table.AttributeNames()
	domains := table.Domains()
	menus := make([]AttributeMenu, 0, len(names))
	for _, name := range names {
		menus = append(menus, AttributeMenu{Name: name, Values: domains[name]})
	}
	return GameData{
		Objects:      len(table),
		Attributes:   menus,
		MaxQuestions: len(names),
	}
}
