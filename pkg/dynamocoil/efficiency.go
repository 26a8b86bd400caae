package dynamocoil

import "github.com/mtcelestema/nuclearcraft-designer/pkg/layout"

// Efficiency scores a complete dynamo coil grid as the average
// conductivity of every coil whose conductivity is positive; structural
// coils (casing, bearing, connector) carry a negative conductivity
// sentinel and are excluded from both the sum and the count.
func Efficiency(catalog *layout.Catalog, ids []int) float64 {
	total := 0.0
	n := 0
	for _, id := range ids {
		comp, err := catalog.At(id)
		if err != nil {
			continue
		}
		conductivity, _ := comp.Stat(StatConductivity)
		if conductivity <= 0 {
			continue
		}
		total += conductivity
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
