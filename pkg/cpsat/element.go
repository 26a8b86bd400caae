package cpsat

// AddElement asserts target == arr[index], lowered to a per-index
// implication: whichever one-hot branch of index is selected pins target to
// the matching boolean in arr.
func (m *Model) AddElement(index *IntVar, arr []BoolVar, target BoolVar) {
	for i := index.lo; i <= index.hi; i++ {
		pos := i - index.lo
		if pos >= len(arr) {
			m.forbid(index.onehot[pos])
			continue
		}
		sel := index.onehot[pos]
		m.assertTrue(m.c.Implies(m.c.And(sel, arr[pos].lit), target.lit))
		m.assertTrue(m.c.Implies(m.c.And(sel, arr[pos].lit.Not()), target.lit.Not()))
	}
}

// AddElementInt asserts target == values[index-index.Lo()], a lookup into a
// compile-time-constant integer table, used to pull a catalog component's
// scaled stat value based on which component is selected for a cell.
func (m *Model) AddElementInt(index *IntVar, values []int, target *IntVar) {
	for i := index.lo; i <= index.hi; i++ {
		pos := i - index.lo
		sel := index.onehot[pos]
		if pos >= len(values) {
			m.forbid(sel)
			continue
		}
		v := values[pos]
		if v < target.lo || v > target.hi {
			m.forbid(sel)
			continue
		}
		m.assertTrue(m.c.Implies(sel, target.onehot[v-target.lo]))
	}
}
