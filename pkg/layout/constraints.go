package layout

import "github.com/mtcelestema/nuclearcraft-designer/pkg/cpsat"

// Constraint is a layout-level rule that a complete assignment must
// satisfy, independent of any single cell's own PlacementRule. Like
// PlacementRule, every Constraint implements both a direct Check method
// for the backtracking optimiser and an Encode method for the CP-style
// backend.
type Constraint interface {
	// Check reports whether seq, a complete or partial assignment of
	// catalog indices (Empty for unfilled cells), satisfies the
	// constraint.
	Check(seq *MultiSequence[int], catalog *Catalog) bool

	// Encode adds the constraint's clauses to m over vars, a grid of
	// IntVars shaped like seq.
	Encode(m *cpsat.Model, vars *MultiSequence[*cpsat.IntVar], catalog *Catalog)
}

// MaxQuantity bounds the number of cells that may hold TargetName.
type MaxQuantity struct {
	TargetName string
	Max        int
}

// Check implements Constraint.
func (c MaxQuantity) Check(seq *MultiSequence[int], catalog *Catalog) bool {
	n := 0
	for _, id := range seq.Buffer() {
		if id == Empty {
			continue
		}
		if catalog.NameOf(id) == c.TargetName {
			n++
		}
	}
	return n <= c.Max
}

// Encode implements Constraint.
func (c MaxQuantity) Encode(m *cpsat.Model, vars *MultiSequence[*cpsat.IntVar], catalog *Catalog) {
	targetID, err := catalog.IndexOf(c.TargetName)
	if err != nil {
		return
	}
	matches := make([]cpsat.BoolVar, vars.Len())
	for i, v := range vars.Buffer() {
		matches[i] = m.IntEq(v, targetID)
	}
	m.Add(m.CardinalityLeq(matches, c.Max))
}

// Symmetry requires the layout to read identically when mirrored across
// every axis independently: for every cell and every axis d, the cell at
// coords and its axis-d reflection must hold the same component.
type Symmetry struct{}

// Check implements Constraint.
func (Symmetry) Check(seq *MultiSequence[int], catalog *Catalog) bool {
	dims := seq.Dims()
	for idx, id := range seq.Buffer() {
		if id == Empty {
			continue
		}
		coords, err := seq.IntToTuple(idx)
		if err != nil {
			continue
		}
		for d := range dims {
			mirrored := mirrorCoords(coords, dims, d)
			mid, err := seq.TupleToInt(mirrored)
			if err != nil {
				continue
			}
			mirroredID := seq.buffer[mid]
			if mirroredID == Empty {
				continue
			}
			if catalog.NameOf(id) != catalog.NameOf(mirroredID) {
				return false
			}
		}
	}
	return true
}

// Encode implements Constraint.
func (Symmetry) Encode(m *cpsat.Model, vars *MultiSequence[*cpsat.IntVar], catalog *Catalog) {
	dims := vars.Dims()
	for idx := 0; idx < vars.Len(); idx++ {
		coords, err := vars.IntToTuple(idx)
		if err != nil {
			continue
		}
		for d := range dims {
			mirrored := mirrorCoords(coords, dims, d)
			mid, err := vars.TupleToInt(mirrored)
			if err != nil {
				continue
			}
			if mid == idx {
				continue
			}
			a, _ := vars.At(idx)
			b, _ := vars.At(mid)
			m.Add(m.IntVarsEq(a, b))
		}
	}
}

// ValidateConstraints reports an *UnsupportedDimensionError if any of
// constraints requires a grid shape that dims does not have (e.g.
// CenteredBearings is 2-D only). Callers that build a search over dims and
// constraints should call this up front rather than let the mismatch be
// silently absorbed by Check/Encode.
func ValidateConstraints(dims []int, constraints []Constraint) error {
	for _, c := range constraints {
		if _, ok := c.(CenteredBearings); ok && len(dims) != 2 {
			return &UnsupportedDimensionError{Operation: "CenteredBearings", Rank: len(dims)}
		}
	}
	return nil
}

func mirrorCoords(coords, dims []int, axis int) []int {
	out := append([]int(nil), coords...)
	out[axis] = dims[axis] - coords[axis] - 1
	return out
}

// PlacementRuleEnforced requires every occupied cell's component to accept
// its own neighbourhood, per that component's PlacementRule.
type PlacementRuleEnforced struct{}

// Check implements Constraint.
func (PlacementRuleEnforced) Check(seq *MultiSequence[int], catalog *Catalog) bool {
	for idx, id := range seq.Buffer() {
		if id == Empty {
			continue
		}
		names, err := neighbourNames(seq, catalog, idx)
		if err != nil {
			continue
		}
		comp, err := catalog.At(id)
		if err != nil {
			continue
		}
		if !comp.PlacementRule.Evaluate(names) {
			return false
		}
	}
	return true
}

func neighbourNames(seq *MultiSequence[int], catalog *Catalog, idx int) ([]string, error) {
	coords, err := seq.IntToTuple(idx)
	if err != nil {
		return nil, err
	}
	neighbours, ok, err := seq.NeighbourCoords(coords)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(neighbours))
	for i, present := range ok {
		if !present {
			names[i] = NameWall
			continue
		}
		nid, err := seq.AtCoords(neighbours[i])
		if err != nil {
			names[i] = NameWall
			continue
		}
		names[i] = catalog.NameOf(nid)
	}
	return names, nil
}

// Encode implements Constraint.
func (PlacementRuleEnforced) Encode(m *cpsat.Model, vars *MultiSequence[*cpsat.IntVar], catalog *Catalog) {
	for idx := 0; idx < vars.Len(); idx++ {
		coords, err := vars.IntToTuple(idx)
		if err != nil {
			continue
		}
		neighbourCoordList, ok, err := vars.NeighbourCoords(coords)
		if err != nil {
			continue
		}
		neighbourVars := make([]*cpsat.IntVar, len(neighbourCoordList))
		for i, present := range ok {
			if !present {
				neighbourVars[i] = nil
				continue
			}
			nv, err := vars.AtCoords(neighbourCoordList[i])
			if err != nil {
				neighbourVars[i] = nil
				continue
			}
			neighbourVars[i] = nv
		}

		satisfiedIfType := make([]cpsat.BoolVar, catalog.Len())
		for id, comp := range catalog.Components() {
			satisfiedIfType[id] = comp.PlacementRule.Encode(m, neighbourVars, catalog)
		}

		cellVar, err := vars.At(idx)
		if err != nil {
			continue
		}
		target := m.NewBoolVar("placement_rule_satisfied")
		m.AddElement(cellVar, satisfiedIfType, target)
		m.Add(target)
	}
}

// CenteredBearings requires a centered square block of "bearing"
// components sized by the rotor shaft width, and forbids "bearing" outside
// that block. It is a 2-D-only constraint: its geometry is defined in terms
// of a single square grid dimension. Odd and even grid sizes center the
// block differently: an odd grid has one central cell and the block
// extends (ShaftWidth-1)/2 cells from it on each side, while an even grid
// has no single central cell and the block spans rows and columns
// dim/2-ShaftWidth/2 through dim/2+ShaftWidth/2-1. The block is ShaftWidth
// cells wide when grid size and shaft width have the same parity, and
// ShaftWidth-1 cells wide otherwise (empty for ShaftWidth 1 on an even grid).
type CenteredBearings struct {
	ShaftWidth int
}

func (c CenteredBearings) inBlock(dim, y, x int) bool {
	if dim%2 == 1 {
		mid := (dim - 1) / 2
		r := (c.ShaftWidth - 1) / 2
		return mid-r <= x && x <= mid+r && mid-r <= y && y <= mid+r
	}
	mid := dim/2 - 1
	rLeft := c.ShaftWidth/2 - 1
	rRight := c.ShaftWidth / 2
	return mid-rLeft <= x && x <= mid+rRight && mid-rLeft <= y && y <= mid+rRight
}

// Check implements Constraint. Callers that might pass a non-2-D sequence
// should validate shape up front with ValidateConstraints; Check's
// bool-only signature has no channel to report the mismatch, so it treats
// an unsupported rank as unsatisfied rather than panicking.
func (c CenteredBearings) Check(seq *MultiSequence[int], catalog *Catalog) bool {
	dims := seq.Dims()
	if len(dims) != 2 {
		return false
	}
	dim := dims[0]
	for y := 0; y < dims[0]; y++ {
		for x := 0; x < dims[1]; x++ {
			id, err := seq.AtCoords([]int{y, x})
			if err != nil || id == Empty {
				continue
			}
			name := catalog.NameOf(id)
			if c.inBlock(dim, y, x) {
				if name != "bearing" {
					return false
				}
			} else if name == "bearing" {
				return false
			}
		}
	}
	return true
}

// Encode implements Constraint. See Check's note on ValidateConstraints.
func (c CenteredBearings) Encode(m *cpsat.Model, vars *MultiSequence[*cpsat.IntVar], catalog *Catalog) {
	dims := vars.Dims()
	if len(dims) != 2 {
		return
	}
	bearingID, err := catalog.IndexOf("bearing")
	if err != nil {
		return
	}
	dim := dims[0]
	for y := 0; y < dims[0]; y++ {
		for x := 0; x < dims[1]; x++ {
			v, err := vars.AtCoords([]int{y, x})
			if err != nil {
				continue
			}
			if c.inBlock(dim, y, x) {
				m.Add(m.IntEq(v, bearingID))
			} else {
				m.Add(m.IntNotEq(v, bearingID))
			}
		}
	}
}
