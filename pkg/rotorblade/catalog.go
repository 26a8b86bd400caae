// Package rotorblade designs NuclearCraft: Overhauled turbine rotor blade
// sequences: a 1-D layout.Backtracking search over the reference rotor
// blade catalog, scored by the running expansion-level efficiency model.
package rotorblade

import "github.com/mtcelestema/nuclearcraft-designer/pkg/layout"

// StatEfficiency and StatExpansion name the two stats every rotor blade
// carries in its Component.Stats map.
const (
	StatEfficiency = "efficiency"
	StatExpansion  = "expansion"
)

// StandardCatalog returns a freshly-built catalog of the four reference
// NuclearCraft: Overhauled rotor blade types. Every call returns an
// independent Catalog value.
func StandardCatalog() *layout.Catalog {
	return layout.NewCatalog([]layout.Component{
		layout.NewComponent("steel", map[string]float64{StatEfficiency: 1.0, StatExpansion: 1.4}, layout.Always{}),
		layout.NewComponent("extreme", map[string]float64{StatEfficiency: 1.1, StatExpansion: 1.6}, layout.Always{}),
		layout.NewComponent("sic_sic_cmc", map[string]float64{StatEfficiency: 1.2, StatExpansion: 1.8}, layout.Always{}),
		layout.NewComponent("stator", map[string]float64{StatEfficiency: -1.0, StatExpansion: 0.75}, layout.Always{}),
	})
}
