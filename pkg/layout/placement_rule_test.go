package layout

import (
	"context"
	"testing"

	"github.com/mtcelestema/nuclearcraft-designer/pkg/cpsat"
)

func TestAlwaysEvaluate(t *testing.T) {
	if !(Always{}).Evaluate([]string{NameWall, NameWall}) {
		t.Fatal("Always must always be satisfied")
	}
}

func TestSimpleEvaluateIncompleteShortCircuits(t *testing.T) {
	rule := Simple{TargetName: "steel", MinQuantity: 2}
	neighbours := []string{NameIncomplete, NameWall, NameWall, NameWall}
	if !rule.Evaluate(neighbours) {
		t.Fatal("a neighbour set containing an incomplete cell must satisfy Simple")
	}
}

func TestSimpleEvaluateQuantity(t *testing.T) {
	tests := []struct {
		name       string
		rule       Simple
		neighbours []string
		want       bool
	}{
		{
			name:       "at_least_satisfied",
			rule:       Simple{TargetName: "steel", MinQuantity: 2},
			neighbours: []string{"steel", "steel", NameWall, "stator"},
			want:       true,
		},
		{
			name:       "at_least_unsatisfied",
			rule:       Simple{TargetName: "steel", MinQuantity: 2},
			neighbours: []string{"steel", NameWall, NameWall, "stator"},
			want:       false,
		},
		{
			name:       "exact_satisfied",
			rule:       Simple{TargetName: "steel", MinQuantity: 1, Exact: true},
			neighbours: []string{"steel", NameWall, NameWall, NameWall},
			want:       true,
		},
		{
			name:       "exact_unsatisfied_too_many",
			rule:       Simple{TargetName: "steel", MinQuantity: 1, Exact: true},
			neighbours: []string{"steel", "steel", NameWall, NameWall},
			want:       false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Evaluate(tt.neighbours); got != tt.want {
				t.Fatalf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimpleEvaluateAxial(t *testing.T) {
	rule := Simple{TargetName: "steel", Axial: true}
	tests := []struct {
		name       string
		neighbours []string
		want       bool
	}{
		{"through_on_axis_0", []string{"steel", "steel", NameWall, "stator"}, true},
		{"through_on_axis_1", []string{"stator", NameWall, "steel", "steel"}, true},
		{"one_sided_only", []string{"steel", NameWall, NameWall, NameWall}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.Evaluate(tt.neighbours); got != tt.want {
				t.Fatalf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSimpleEvaluateAxialRequiresQuantityToo guards against Axial acting as
// an independent escape hatch from MinQuantity/Exact: both must hold.
func TestSimpleEvaluateAxialRequiresQuantityToo(t *testing.T) {
	rule := Simple{TargetName: "x", MinQuantity: 3, Axial: true}
	neighbours := []string{"x", "x", "y", "y"}
	if rule.Evaluate(neighbours) {
		t.Fatal("Evaluate() = true, want false: only 2 of the required 3 neighbours are x, despite an axial pair being present")
	}
}

// TestSimpleEncodeAxialRequiresQuantityToo mirrors
// TestSimpleEvaluateAxialRequiresQuantityToo at the CP-encoding level: an
// axial pair present but MinQuantity unmet must encode to false, not true.
func TestSimpleEncodeAxialRequiresQuantityToo(t *testing.T) {
	catalog := NewCatalog([]Component{
		NewComponent("x", nil, Always{}),
		NewComponent("y", nil, Always{}),
	})
	xID, _ := catalog.IndexOf("x")
	yID, _ := catalog.IndexOf("y")

	m := cpsat.NewModel()
	neighbourVars := []*cpsat.IntVar{
		m.NewConstant(xID, "n0"),
		m.NewConstant(xID, "n1"),
		m.NewConstant(yID, "n2"),
		m.NewConstant(yID, "n3"),
	}
	rule := Simple{TargetName: "x", MinQuantity: 3, Axial: true}
	lit := rule.Encode(m, neighbourVars, catalog)
	m.Add(lit)

	_, ok, err := m.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if ok {
		t.Fatal("expected infeasible: axial pair present but only 2 of the required 3 neighbours are x")
	}
}

func TestCompoundEvaluate(t *testing.T) {
	and := Compound{
		Mode: AND,
		Children: []PlacementRule{
			Simple{TargetName: "gold", MinQuantity: 1},
			Simple{TargetName: "copper", MinQuantity: 1},
		},
	}
	or := Compound{Mode: OR, Children: and.Children}

	neighbours := []string{"gold", NameWall, NameWall, NameWall}
	if and.Evaluate(neighbours) {
		t.Fatal("AND compound should fail when only one child is satisfied")
	}
	if !or.Evaluate(neighbours) {
		t.Fatal("OR compound should succeed when one child is satisfied")
	}

	both := []string{"gold", "copper", NameWall, NameWall}
	if !and.Evaluate(both) {
		t.Fatal("AND compound should succeed when every child is satisfied")
	}
}
