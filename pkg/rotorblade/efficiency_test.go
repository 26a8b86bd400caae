package rotorblade

import "testing"

func TestExpansionLevelsAllSteel(t *testing.T) {
	catalog := StandardCatalog()
	steel, err := catalog.IndexOf("steel")
	if err != nil {
		t.Fatalf("IndexOf: %v", err)
	}
	total, levels := ExpansionLevels(catalog, []int{steel, steel, steel})
	wantTotal := 1.4 * 1.4 * 1.4
	if diff := total - wantTotal; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("total = %v, want %v", total, wantTotal)
	}
	if len(levels) != 3 {
		t.Fatalf("len(levels) = %d, want 3", len(levels))
	}
}

func TestEfficiencyIgnoresStators(t *testing.T) {
	catalog := StandardCatalog()
	steel, _ := catalog.IndexOf("steel")
	stator, _ := catalog.IndexOf("stator")

	allSteel := Efficiency(catalog, []int{steel, steel, steel}, 1.4*1.4*1.4)
	withStator := Efficiency(catalog, []int{steel, stator, steel}, 1.4*1.4*1.4)

	if allSteel <= 0 {
		t.Fatalf("expected positive efficiency for all-steel near-optimal sequence, got %v", allSteel)
	}
	if withStator < 0 {
		t.Fatalf("stators must not make efficiency negative, got %v", withStator)
	}
}

func TestEfficiencyExactMatchScoresOwnEfficiencyStat(t *testing.T) {
	catalog := StandardCatalog()
	steel, _ := catalog.IndexOf("steel")
	steelExpansion := 1.4

	// For a homogeneous sequence of n blades with expansion e, setting
	// optExpansion = e^n makes every position's target expansion level
	// land exactly on the sequence's own running expansion curve (ratio
	// 1.0 everywhere), so the score collapses to the blade's own
	// efficiency stat.
	n := 3
	optExpansion := steelExpansion * steelExpansion * steelExpansion
	got := Efficiency(catalog, []int{steel, steel, steel}, optExpansion)
	want := 1.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Efficiency = %v, want %v (n=%d)", got, want, n)
	}
}
