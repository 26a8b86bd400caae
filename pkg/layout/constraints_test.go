package layout

import "testing"

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	return NewCatalog([]Component{
		NewComponent("steel", map[string]float64{"expansion": 1.0}, Always{}),
		NewComponent("bearing", map[string]float64{}, Always{}),
		NewComponent("stator", map[string]float64{}, Always{}),
	})
}

func TestMaxQuantityCheck(t *testing.T) {
	catalog := testCatalog(t)
	seq, err := NewMultiSequence([]int{0, 0, 1}, []int{3})
	if err != nil {
		t.Fatalf("NewMultiSequence: %v", err)
	}
	c := MaxQuantity{TargetName: "steel", Max: 2}
	if !c.Check(seq, catalog) {
		t.Fatal("expected 2 steel to satisfy Max=2")
	}
	c.Max = 1
	if c.Check(seq, catalog) {
		t.Fatal("expected 2 steel to violate Max=1")
	}
}

func TestSymmetryCheck(t *testing.T) {
	catalog := testCatalog(t)
	// 1x3 row: steel, bearing, steel — symmetric under the single axis.
	symmetric, err := NewMultiSequence([]int{0, 1, 0}, []int{3})
	if err != nil {
		t.Fatalf("NewMultiSequence: %v", err)
	}
	if !(Symmetry{}).Check(symmetric, catalog) {
		t.Fatal("expected symmetric row to satisfy Symmetry")
	}
	asymmetric, err := NewMultiSequence([]int{0, 1, 2}, []int{3})
	if err != nil {
		t.Fatalf("NewMultiSequence: %v", err)
	}
	if (Symmetry{}).Check(asymmetric, catalog) {
		t.Fatal("expected asymmetric row to violate Symmetry")
	}
}

func TestPlacementRuleEnforcedCheck(t *testing.T) {
	catalog := NewCatalog([]Component{
		NewComponent("steel", map[string]float64{}, Always{}),
		NewComponent("gold", map[string]float64{}, Simple{TargetName: "steel", MinQuantity: 1}),
	})
	ok, err := NewMultiSequence([]int{0, 1}, []int{2})
	if err != nil {
		t.Fatalf("NewMultiSequence: %v", err)
	}
	if !(PlacementRuleEnforced{}).Check(ok, catalog) {
		t.Fatal("gold adjacent to steel should satisfy its placement rule")
	}
	bad, err := NewMultiSequence([]int{1, 1}, []int{2})
	if err != nil {
		t.Fatalf("NewMultiSequence: %v", err)
	}
	if (PlacementRuleEnforced{}).Check(bad, catalog) {
		t.Fatal("gold with no adjacent steel should violate its placement rule")
	}
}

func TestCenteredBearingsCheckOddGrid(t *testing.T) {
	catalog := testCatalog(t)
	// 3x3 grid, shaft width 1: only the center cell (1,1) must be bearing.
	buf := []int{2, 2, 2, 2, 1, 2, 2, 2, 2}
	seq, err := NewMultiSequence(buf, []int{3, 3})
	if err != nil {
		t.Fatalf("NewMultiSequence: %v", err)
	}
	c := CenteredBearings{ShaftWidth: 1}
	if !c.Check(seq, catalog) {
		t.Fatal("expected centered single bearing to satisfy constraint")
	}

	offCenterBuf := []int{1, 2, 2, 2, 2, 2, 2, 2, 2}
	offCenter, err := NewMultiSequence(offCenterBuf, []int{3, 3})
	if err != nil {
		t.Fatalf("NewMultiSequence: %v", err)
	}
	if c.Check(offCenter, catalog) {
		t.Fatal("expected off-center bearing to violate constraint")
	}
}

func TestScaledOpsMulDivRoundTrip(t *testing.T) {
	ops := ScaledOps{ScalingFactor: 4}
	a := ops.Scale(1.1)
	b := ops.Scale(1.4)
	got := ops.Unscale(ops.Mul(a, b))
	want := 1.1 * 1.4
	if diff := got - want; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("Mul round-trip = %v, want approximately %v", got, want)
	}
	gotDiv := ops.Unscale(ops.Div(a, b))
	wantDiv := 1.1 / 1.4
	if diff := gotDiv - wantDiv; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("Div round-trip = %v, want approximately %v", gotDiv, wantDiv)
	}
}
