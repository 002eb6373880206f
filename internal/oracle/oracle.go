// Package oracle implements the exact information-theoretic oracle for
// k-ary optimal question asking: given a closed table of objects described
// by categorical attributes, it computes the question policy minimizing the
// expected number of attribute questions needed to isolate the hidden
// target (or its equivalence class), and replays that policy against any
// target to produce a posterior entropy trajectory in bits.
package oracle

import (
	"errors"
	"fmt"

	"oqa/internal/dataset"
)

// ErrUnknownTarget indicates a simulation request for an id absent from the table.
var ErrUnknownTarget = errors.New("unknown target id")

// Oracle holds the memoized dynamic program over candidate-set states.
// Building it is a pure function of the item table; a built oracle is
// reusable across any number of simulations.
type Oracle struct {
	table dataset.Table
	attrs []string
	root  []string
	memo  map[string]decision
}

// decision is the solved value of one candidate-set state: the optimal
// expected number of remaining questions and the attribute achieving it.
// attr is empty for terminal states (singletons and irreducible classes).
type decision struct {
	cost float64
	attr string
}

// New builds an oracle from a validated item table.
func New(table dataset.Table) (*Oracle, error) {
	if err := dataset.ValidateTable(table); err != nil {
		return nil, fmt.Errorf("build oracle: %w", err)
	}
	return &Oracle{
		table: table,
		attrs: table.AttributeNames(),
		root:  table.IDs(),
		memo:  map[string]decision{},
	}, nil
}

// Attributes returns the askable attribute names in the fixed order used
// for tie-breaking.
func (o *Oracle) Attributes() []string {
	out := make([]string, len(o.attrs))
	copy(out, o.attrs)
	return out
}

// ExpectedQuestions returns the optimal expected number of questions from
// the prior state (all objects candidates).
func (o *Oracle) ExpectedQuestions() float64 {
	solved := o.solve(o.root)
	return solved.cost
}

// BestAttribute returns the optimal attribute to ask for an arbitrary
// candidate set, or "" when no attribute can split it further. The ids are
// canonicalized internally before the dynamic program is consulted.
func (o *Oracle) BestAttribute(candidateIDs []string) string {
	state := canonical(candidateIDs)
	return o.solve(state).attr
}
