package oracle

import "fmt"

// Step is one point of an entropy trajectory. Step 1 is the prior, before
// any question has been asked.
type Step struct {
	N    int
	Bits float64
}

// Trajectory is the per-step posterior entropy of the optimal policy
// replayed against one hidden target, together with the attributes asked.
// Bits are non-increasing and end at log2 of the target's equivalence
// class size.
type Trajectory struct {
	Steps []Step
	Asked []string
}

// Floor returns the final entropy of the trajectory.
func (t Trajectory) Floor() float64 {
	if len(t.Steps) == 0 {
		return 0
	}
	return t.Steps[len(t.Steps)-1].Bits
}

// SimulateTarget replays the optimal policy against a fixed hidden target.
// Each question restricts the candidate set to objects whose answer matches
// the target's; the replay stops once the candidate set is a single
// irreducible equivalence class.
func (o *Oracle) SimulateTarget(targetID string) (Trajectory, error) {
	target, ok := o.table[targetID]
	if !ok {
		return Trajectory{}, fmt.Errorf("%w: %q", ErrUnknownTarget, targetID)
	}

	current := canonical(o.root)
	trajectory := Trajectory{
		Steps: []Step{{N: 1, Bits: Bits(len(current))}},
	}

	for len(current) > 1 {
		attr := o.solve(current).attr
		if attr == "" {
			break
		}
		answer := target[attr]
		next := current[:0:len(current)]
		for _, id := range current {
			if o.table[id][attr] == answer {
				next = append(next, id)
			}
		}
		current = next
		trajectory.Asked = append(trajectory.Asked, attr)
		trajectory.Steps = append(trajectory.Steps, Step{
			N:    len(trajectory.Steps) + 1,
			Bits: Bits(len(current)),
		})
	}
	return trajectory, nil
}
