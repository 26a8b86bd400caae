// Package dynamocoil designs NuclearCraft: Overhauled turbine dynamo coil
// grids: a 2-D layout.Backtracking search over the reference dynamo coil
// catalog, subject to centered-bearing geometry and each coil's own
// adjacency rule, scored by average conductivity.
package dynamocoil

import "github.com/mtcelestema/nuclearcraft-designer/pkg/layout"

// StatConductivity names the single stat every dynamo coil carries in its
// Component.Stats map.
const StatConductivity = "conductivity"

// StandardCatalog returns a freshly-built catalog of the nine reference
// NuclearCraft: Overhauled dynamo coil types, wired with their real
// adjacency rules (casing and bearing are structural filler with no
// requirement; every conductive coil requires a specific neighbour, up to
// silver's requirement of both gold and copper). Every call returns an
// independent Catalog value.
func StandardCatalog() *layout.Catalog {
	return layout.NewCatalog([]layout.Component{
		layout.NewComponent("casing", stats(-1.0), layout.Always{}),
		layout.NewComponent("bearing", stats(-1.0), layout.Always{}),
		layout.NewComponent("connector", stats(-1.0), layout.Compound{
			Mode: layout.OR,
			Children: []layout.PlacementRule{
				layout.Simple{TargetName: "magnesium", MinQuantity: 1},
				layout.Simple{TargetName: "beryllium", MinQuantity: 1},
				layout.Simple{TargetName: "aluminum", MinQuantity: 1},
				layout.Simple{TargetName: "gold", MinQuantity: 1},
				layout.Simple{TargetName: "copper", MinQuantity: 1},
				layout.Simple{TargetName: "silver", MinQuantity: 1},
			},
		}),
		layout.NewComponent("magnesium", stats(0.88), layout.Compound{
			Mode: layout.OR,
			Children: []layout.PlacementRule{
				layout.Simple{TargetName: "bearing", MinQuantity: 1},
				layout.Simple{TargetName: "connector", MinQuantity: 1},
			},
		}),
		layout.NewComponent("beryllium", stats(0.9), layout.Simple{TargetName: "magnesium", MinQuantity: 1}),
		layout.NewComponent("aluminum", stats(1.0), layout.Simple{TargetName: "magnesium", MinQuantity: 2}),
		layout.NewComponent("gold", stats(1.04), layout.Simple{TargetName: "aluminum", MinQuantity: 1}),
		layout.NewComponent("copper", stats(1.06), layout.Simple{TargetName: "beryllium", MinQuantity: 1}),
		layout.NewComponent("silver", stats(1.12), layout.Compound{
			Mode: layout.AND,
			Children: []layout.PlacementRule{
				layout.Simple{TargetName: "gold", MinQuantity: 1},
				layout.Simple{TargetName: "copper", MinQuantity: 1},
			},
		}),
	})
}

func stats(conductivity float64) map[string]float64 {
	return map[string]float64{StatConductivity: conductivity}
}
