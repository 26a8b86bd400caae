package rotorblade

import "github.com/mtcelestema/nuclearcraft-designer/pkg/layout"

// DesignRotorBlades searches for rotor blade sequences of the given length
// that maximize Efficiency against optExpansion, subject to per-type
// quantity limits (a name absent from typeLimits is unrestricted). It
// returns a lazy stream of strictly-improving complete sequences, each
// decoded to its ordered blade names.
func DesignRotorBlades(length int, optExpansion float64, catalog *layout.Catalog, typeLimits map[string]int) (*layout.ImprovingSequence[[]string], error) {
	constraints := []layout.Constraint{layout.PlacementRuleEnforced{}}
	for name, max := range typeLimits {
		if max < 0 {
			continue
		}
		constraints = append(constraints, layout.MaxQuantity{TargetName: name, Max: max})
	}

	score := func(seq *layout.MultiSequence[int]) float64 {
		return Efficiency(catalog, seq.Buffer(), optExpansion)
	}

	bt, err := layout.NewBacktracking([]int{length}, catalog, constraints, score)
	if err != nil {
		return nil, err
	}
	return layout.NewImprovingSequence(bt, func(seq *layout.MultiSequence[int]) []string {
		names := make([]string, seq.Len())
		for i, id := range seq.Buffer() {
			names[i] = catalog.NameOf(id)
		}
		return names
	}), nil
}
