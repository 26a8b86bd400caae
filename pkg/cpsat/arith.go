package cpsat

import "github.com/go-air/gini/z"

// AddMultiplicationEquality asserts target == a*b over the full domains of
// a and b, enumerating every value pair: a combination whose product falls
// outside target's domain is forbidden outright rather than left to the
// solver.
func (m *Model) AddMultiplicationEquality(target, a, b *IntVar) {
	m.addBinaryTable(target, a, b, func(av, bv int) int { return av * bv })
}

// AddDivisionEquality asserts target == a/b using truncating integer
// division, over the full domains of a and b. Combinations where b is zero
// are forbidden outright.
func (m *Model) AddDivisionEquality(target, a, b *IntVar) {
	m.addBinaryTable(target, a, b, func(av, bv int) int {
		if bv == 0 {
			return target.lo - 1 // guaranteed out of range: forces combination to be forbidden
		}
		return av / bv
	})
}

func (m *Model) addBinaryTable(target, a, b *IntVar, f func(av, bv int) int) {
	for av := a.lo; av <= a.hi; av++ {
		for bv := b.lo; bv <= b.hi; bv++ {
			combo := m.c.And(a.onehot[av-a.lo], b.onehot[bv-b.lo])
			result := f(av, bv)
			if result < target.lo || result > target.hi {
				m.forbid(combo)
				continue
			}
			m.assertTrue(m.c.Implies(combo, target.onehot[result-target.lo]))
		}
	}
}

func (m *Model) forbid(combo z.Lit) {
	m.assertTrue(combo.Not())
}
