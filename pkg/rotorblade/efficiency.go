package rotorblade

import (
	"math"

	"github.com/mtcelestema/nuclearcraft-designer/pkg/layout"
)

// ExpansionLevels returns the sequence's total expansion level (the
// running product of every blade's expansion stat) and the expansion
// level reached at each blade, where blade i's level is the running
// product up to (but not including) i times sqrt(blade[i].expansion).
func ExpansionLevels(catalog *layout.Catalog, ids []int) (total float64, levels []float64) {
	total = 1.0
	levels = make([]float64, len(ids))
	for i, id := range ids {
		comp, err := catalog.At(id)
		if err != nil {
			levels[i] = 0
			continue
		}
		expansion, _ := comp.Stat(StatExpansion)
		levels[i] = total * math.Sqrt(expansion)
		total *= expansion
	}
	return total, levels
}

// Efficiency scores a complete rotor blade sequence against a target
// optimal expansion level: every blade with positive efficiency
// contributes efficiency*ratio, where ratio is how closely that blade's
// reached expansion level matches the optimal level scaled to its
// position in the sequence (1.0 for an exact match, falling off toward 0
// the further off it is); stator-like blades (non-positive efficiency)
// don't contribute to the score or the averaging denominator.
func Efficiency(catalog *layout.Catalog, ids []int, optExpansion float64) float64 {
	_, levels := ExpansionLevels(catalog, ids)
	total := 0.0
	nBlades := 0
	n := len(ids)
	for i, id := range ids {
		comp, err := catalog.At(id)
		if err != nil {
			continue
		}
		blEfficiency, _ := comp.Stat(StatEfficiency)
		if blEfficiency <= 0 {
			continue
		}
		optAtPos := math.Pow(optExpansion, (float64(i)+0.5)/float64(n))
		reached := levels[i]
		var ratio float64
		switch {
		case optAtPos > 0 && reached > 0:
			if optAtPos < reached {
				ratio = optAtPos / reached
			} else {
				ratio = reached / optAtPos
			}
		default:
			ratio = 0
		}
		total += blEfficiency * ratio
		nBlades++
	}
	if nBlades == 0 {
		return 0
	}
	return total / float64(nBlades)
}
