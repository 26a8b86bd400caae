package cpsat

import (
	"context"
	"fmt"
)

// SolveMaximize finds a feasible, objective-maximizing assignment. It has
// no native ILP objective to hand to the SAT engine, so it performs an
// incumbent-tightening search: solve once for feasibility, then repeatedly
// add "objective >= incumbent+1" and re-solve until infeasible.
func (m *Model) SolveMaximize(ctx context.Context) (*Solution, bool, error) {
	if len(m.objective) == 0 {
		return m.Solve(ctx)
	}
	lo, hi := m.objectiveBounds()

	var best *Solution
	found := false
	floor := lo
	for floor <= hi {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		floorLit := m.objectiveGeq(floor)
		g := m.compile()
		lits := m.assumptions()
		lits = append(lits, floorLit.lit)
		g.Assume(lits...)
		switch g.Solve() {
		case 1:
			best = &Solution{sat: g, model: m}
			found = true
			floor = m.currentObjectiveValue(best) + 1
		case -1:
			floor = hi + 1
		default:
			return nil, false, fmt.Errorf("cpsat: solve returned an indeterminate result")
		}
	}
	return best, found, nil
}

func (m *Model) currentObjectiveValue(s *Solution) int {
	total := 0
	for _, t := range m.objective {
		total += t.weight * s.IntValue(t.v)
	}
	return total
}

// ObjectiveValue returns the weighted objective sum realized by s.
func (m *Model) ObjectiveValue(s *Solution) int {
	return m.currentObjectiveValue(s)
}
