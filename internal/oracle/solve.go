package oracle

import (
	"sort"
	"strings"
)

// canonical returns a sorted copy of candidate ids so that each logical
// set has one memoizable representation.
func canonical(ids []string) []string {
	state := make([]string, len(ids))
	copy(state, ids)
	sort.Strings(state)
	return state
}

// stateKey encodes a canonical state for the memo table.
func stateKey(state []string) string {
	return strings.Join(state, "\x1f")
}

// split partitions a candidate state by one attribute's value. The result
// has a single element when the attribute is constant over the state.
// Children inherit the parent's id ordering, so they stay canonical.
func (o *Oracle) split(state []string, attr string) [][]string {
	buckets := map[string][]string{}
	order := make([]string, 0, 4)
	for _, id := range state {
		value := o.table[id][attr]
		if _, seen := buckets[value]; !seen {
			order = append(order, value)
		}
		buckets[value] = append(buckets[value], id)
	}
	children := make([][]string, 0, len(order))
	for _, value := range order {
		children = append(children, buckets[value])
	}
	return children
}

// solve returns the optimal expected remaining-question cost for a
// canonical state, memoized by state key. Attributes are evaluated in the
// fixed sorted order and a strictly smaller cost is required to replace
// the incumbent, so ties resolve to the first attribute in that order.
func (o *Oracle) solve(state []string) decision {
	if len(state) <= 1 {
		return decision{}
	}
	key := stateKey(state)
	if solved, ok := o.memo[key]; ok {
		return solved
	}

	n := float64(len(state))
	best := decision{cost: -1}
	for _, attr := range o.attrs {
		children := o.split(state, attr)
		if len(children) <= 1 {
			continue
		}
		cost := 1.0
		for _, child := range children {
			weight := float64(len(child)) / n
			cost += weight * o.solve(child).cost
		}
		if best.attr == "" || cost < best.cost {
			best = decision{cost: cost, attr: attr}
		}
	}
	if best.attr == "" {
		// Irreducible equivalence class: terminal, zero further cost.
		best = decision{}
	}

	o.memo[key] = best
	return best
}
