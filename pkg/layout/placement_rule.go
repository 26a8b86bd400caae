package layout

import "github.com/mtcelestema/nuclearcraft-designer/pkg/cpsat"

// LogicMode selects how a Compound rule's children combine.
type LogicMode int

const (
	// AND requires every child rule to be satisfied.
	AND LogicMode = iota
	// OR requires at least one child rule to be satisfied.
	OR
)

// PlacementRule decides whether a component may legally occupy a cell,
// given the names of its 2*rank canonical neighbours (NameWall/NameIncomplete
// for off-grid/unassigned neighbours). Every rule implements both a direct
// Evaluate method, for the backtracking optimiser, and an Encode method
// lowering the same semantics onto a CP-style model, for the alternative
// solving backend — so a new rule type cannot ship only one.
type PlacementRule interface {
	// Evaluate reports whether the rule is satisfied given the ordered
	// names of the cell's neighbours.
	Evaluate(neighbours []string) bool

	// Encode lowers the rule onto m as a boolean literal. neighbourVars is
	// the ordered (+d,-d) canonical list of neighbour IntVars, one per
	// catalog-index domain; a nil entry marks an off-grid ("wall")
	// neighbour, which never satisfies a target-name match.
	Encode(m *cpsat.Model, neighbourVars []*cpsat.IntVar, catalog *Catalog) cpsat.BoolVar
}

// Always is the rule satisfied unconditionally; it is the default rule for
// components with no adjacency requirement.
type Always struct{}

// Evaluate always returns true.
func (Always) Evaluate(neighbours []string) bool { return true }

// Encode implements PlacementRule.
func (Always) Encode(m *cpsat.Model, neighbourVars []*cpsat.IntVar, catalog *Catalog) cpsat.BoolVar {
	return m.True()
}

// Simple requires at least MinQuantity (or exactly, if Exact) of the
// neighbours to be TargetName, and — if Axial is set — additionally
// requires TargetName to appear on both sides of some single axis (a
// "through" placement). Both conditions apply together when Axial is set.
// A cell with any unassigned ("incomplete") neighbour trivially satisfies a
// Simple rule under Evaluate: the partial layout cannot yet refute it, so
// the backtracking search must not prune on it early. The CP encoding has
// no such notion, since it only ever reasons about complete assignments.
type Simple struct {
	TargetName  string
	MinQuantity int
	Exact       bool
	Axial       bool
}

// Evaluate implements PlacementRule.
func (s Simple) Evaluate(neighbours []string) bool {
	for _, n := range neighbours {
		if n == NameIncomplete {
			return true
		}
	}
	count := 0
	for _, n := range neighbours {
		if n == s.TargetName {
			count++
		}
	}
	var quantitySatisfied bool
	if s.Exact {
		quantitySatisfied = count == s.MinQuantity
	} else {
		quantitySatisfied = count >= s.MinQuantity
	}
	if !s.Axial {
		return quantitySatisfied
	}
	axialSatisfied := false
	for d := 0; d+1 < len(neighbours); d += 2 {
		if neighbours[d] == s.TargetName && neighbours[d+1] == s.TargetName {
			axialSatisfied = true
			break
		}
	}
	return quantitySatisfied && axialSatisfied
}

// Encode implements PlacementRule.
func (s Simple) Encode(m *cpsat.Model, neighbourVars []*cpsat.IntVar, catalog *Catalog) cpsat.BoolVar {
	targetID, err := catalog.IndexOf(s.TargetName)
	if err != nil {
		return m.False()
	}

	matches := make([]cpsat.BoolVar, len(neighbourVars))
	for i, nv := range neighbourVars {
		if nv == nil {
			matches[i] = m.False()
			continue
		}
		matches[i] = m.IntEq(nv, targetID)
	}

	var quantityLit cpsat.BoolVar
	if s.Exact {
		quantityLit = m.CardinalityEq(matches, s.MinQuantity)
	} else {
		quantityLit = m.CardinalityGeq(matches, s.MinQuantity)
	}
	if !s.Axial {
		return quantityLit
	}
	pairs := make([]cpsat.BoolVar, 0, len(matches)/2)
	for d := 0; d+1 < len(matches); d += 2 {
		pairs = append(pairs, m.And(matches[d], matches[d+1]))
	}
	axialLit := m.Or(pairs...)
	return m.And(quantityLit, axialLit)
}

// Compound combines a set of child rules under AND or OR logic, the
// adjacency-rule equivalent of a boolean expression tree.
type Compound struct {
	Children []PlacementRule
	Mode     LogicMode
}

// Evaluate implements PlacementRule.
func (c Compound) Evaluate(neighbours []string) bool {
	switch c.Mode {
	case OR:
		for _, child := range c.Children {
			if child.Evaluate(neighbours) {
				return true
			}
		}
		return false
	default: // AND
		for _, child := range c.Children {
			if !child.Evaluate(neighbours) {
				return false
			}
		}
		return true
	}
}

// Encode implements PlacementRule.
func (c Compound) Encode(m *cpsat.Model, neighbourVars []*cpsat.IntVar, catalog *Catalog) cpsat.BoolVar {
	lits := make([]cpsat.BoolVar, len(c.Children))
	for i, child := range c.Children {
		lits[i] = child.Encode(m, neighbourVars, catalog)
	}
	if c.Mode == OR {
		return m.Or(lits...)
	}
	return m.And(lits...)
}
