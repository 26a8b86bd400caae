package dynamocoil

import "github.com/mtcelestema/nuclearcraft-designer/pkg/layout"

// Grid is a decoded dynamo coil configuration, row-major with Grid[y][x]
// holding the coil name at that cell (or layout.NameIncomplete, which
// DesignDynamoCoils never yields since it only decodes complete solutions).
type Grid [][]string

// DesignDynamoCoils searches for sideLength x sideLength dynamo coil grids
// maximizing Efficiency, subject to a centered bearing block of the given
// shaftWidth, every coil's own adjacency rule, and per-type quantity
// limits (a name absent from typeLimits is unrestricted). It returns a
// lazy stream of strictly-improving complete grids.
func DesignDynamoCoils(sideLength, shaftWidth int, catalog *layout.Catalog, typeLimits map[string]int) (*layout.ImprovingSequence[Grid], error) {
	constraints := []layout.Constraint{
		layout.CenteredBearings{ShaftWidth: shaftWidth},
		layout.PlacementRuleEnforced{},
	}
	for name, max := range typeLimits {
		if max < 0 {
			continue
		}
		constraints = append(constraints, layout.MaxQuantity{TargetName: name, Max: max})
	}

	score := func(seq *layout.MultiSequence[int]) float64 {
		return Efficiency(catalog, seq.Buffer())
	}

	bt, err := layout.NewBacktracking([]int{sideLength, sideLength}, catalog, constraints, score)
	if err != nil {
		return nil, err
	}
	return layout.NewImprovingSequence(bt, func(seq *layout.MultiSequence[int]) Grid {
		grid := make(Grid, sideLength)
		for y := 0; y < sideLength; y++ {
			row := make([]string, sideLength)
			for x := 0; x < sideLength; x++ {
				id, _ := seq.AtCoords([]int{y, x})
				row[x] = catalog.NameOf(id)
			}
			grid[y] = row
		}
		return grid
	}), nil
}
