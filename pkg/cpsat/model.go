// Package cpsat is a small ortools-cp_model-shaped façade over a boolean
// circuit. It substitutes for the external CP-SAT solver the layout engine's
// alternative search backend calls out to: variables, linear/element/boolean
// constraints and a Maximize/Solve pair are all expressed here in terms of
// github.com/go-air/gini's logic.C circuit builder and SAT engine, with
// finite-domain integers encoded as one-hot boolean vectors.
package cpsat

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Model accumulates variables and constraints and lowers them to CNF on
// Solve. A Model is single-use: build it, call Solve or SolveMaximize once,
// then discard it.
type Model struct {
	c        *logic.C
	trueLit  z.Lit
	intVars  []*IntVar
	pending  []*Constraint
	objective []objTerm
}

type objTerm struct {
	v      *IntVar
	weight int
}

// NewModel returns an empty Model.
func NewModel() *Model {
	c := logic.NewC()
	m := &Model{c: c}
	m.trueLit = c.Lit()
	m.pending = append(m.pending, &Constraint{m: m, lit: m.trueLit})
	return m
}

func (m *Model) falseLit() z.Lit {
	return m.trueLit.Not()
}

// BoolVar is a boolean-valued circuit literal.
type BoolVar struct {
	lit z.Lit
}

// Not returns the logical negation of b.
func (b BoolVar) Not() BoolVar {
	return BoolVar{lit: b.lit.Not()}
}

// NewBoolVar returns a fresh, unconstrained boolean variable. name is
// retained only for readability at call sites; it has no effect on solving.
func (m *Model) NewBoolVar(name string) BoolVar {
	return BoolVar{lit: m.c.Lit()}
}

// IntVar is a finite-domain integer variable over [lo, hi], represented
// internally as a one-hot vector of hi-lo+1 boolean literals.
type IntVar struct {
	lo, hi int
	onehot []z.Lit
	name   string
}

// Lo returns the variable's inclusive lower domain bound.
func (v *IntVar) Lo() int { return v.lo }

// Hi returns the variable's inclusive upper domain bound.
func (v *IntVar) Hi() int { return v.hi }

// NewIntVar returns a fresh finite-domain integer variable over [lo, hi]
// and asserts its one-hot exactly-one invariant.
func (m *Model) NewIntVar(lo, hi int, name string) *IntVar {
	if hi < lo {
		hi = lo
	}
	n := hi - lo + 1
	onehot := make([]z.Lit, n)
	for i := range onehot {
		onehot[i] = m.c.Lit()
	}
	cs := m.c.CardSort(onehot)
	m.assertTrue(cs.Leq(1))
	m.assertTrue(cs.Geq(1))
	v := &IntVar{lo: lo, hi: hi, onehot: onehot, name: name}
	m.intVars = append(m.intVars, v)
	return v
}

// NewConstant returns an IntVar whose domain is the single value v.
func (m *Model) NewConstant(v int, name string) *IntVar {
	return m.NewIntVar(v, v, name)
}

func (m *Model) assertTrue(lit z.Lit) {
	m.pending = append(m.pending, &Constraint{m: m, lit: lit, settled: true, unconditional: true})
}

// Constraint is the handle returned by Add, AddBoolAnd and AddBoolOr,
// allowing the caller to condition it with OnlyEnforceIf
// exactly as the cp_model Python API does.
type Constraint struct {
	m             *Model
	lit           z.Lit
	settled       bool
	unconditional bool
}

// Add registers lit as a constraint. Unless OnlyEnforceIf is chained onto
// the result, lit is asserted unconditionally true at Solve time.
func (m *Model) Add(lit BoolVar) *Constraint {
	c := &Constraint{m: m, lit: lit.lit}
	m.pending = append(m.pending, c)
	return c
}

// OnlyEnforceIf makes the constraint's truth conditional on all of conds
// holding: (NOT cond1 OR ... OR NOT condN OR constraint). If this is never
// called, the constraint is enforced unconditionally.
func (c *Constraint) OnlyEnforceIf(conds ...BoolVar) *Constraint {
	lits := make([]z.Lit, 0, len(conds))
	for _, cond := range conds {
		lits = append(lits, cond.lit.Not())
	}
	lits = append(lits, c.lit)
	c.m.assertTrue(c.m.c.Ors(lits...))
	c.settled = true
	return c
}

// AddBoolAnd asserts the conjunction of lits, subject to OnlyEnforceIf.
func (m *Model) AddBoolAnd(lits []BoolVar) *Constraint {
	return m.Add(BoolVar{lit: m.c.Ands(unwrap(lits)...)})
}

// AddBoolOr asserts the disjunction of lits, subject to OnlyEnforceIf.
func (m *Model) AddBoolOr(lits []BoolVar) *Constraint {
	return m.Add(BoolVar{lit: m.c.Ors(unwrap(lits)...)})
}

func unwrap(lits []BoolVar) []z.Lit {
	out := make([]z.Lit, len(lits))
	for i, l := range lits {
		out[i] = l.lit
	}
	return out
}

// True returns the model's constant-true literal.
func (m *Model) True() BoolVar {
	return BoolVar{lit: m.trueLit}
}

// False returns the model's constant-false literal.
func (m *Model) False() BoolVar {
	return BoolVar{lit: m.falseLit()}
}

// Or returns the disjunction of lits as a query literal, without asserting
// anything about it.
func (m *Model) Or(lits ...BoolVar) BoolVar {
	if len(lits) == 0 {
		return m.False()
	}
	return BoolVar{lit: m.c.Ors(unwrap(lits)...)}
}

// And returns the conjunction of lits as a query literal, without
// asserting anything about it.
func (m *Model) And(lits ...BoolVar) BoolVar {
	if len(lits) == 0 {
		return m.True()
	}
	return BoolVar{lit: m.c.Ands(unwrap(lits)...)}
}

// IntEq returns the boolean literal "a == val". If val lies outside a's
// domain the result is the constant false.
func (m *Model) IntEq(a *IntVar, val int) BoolVar {
	if val < a.lo || val > a.hi {
		return BoolVar{lit: m.falseLit()}
	}
	return BoolVar{lit: a.onehot[val-a.lo]}
}

// IntNotEq returns the boolean literal "a != val".
func (m *Model) IntNotEq(a *IntVar, val int) BoolVar {
	return m.IntEq(a, val).Not()
}

// IntVarsEq returns the boolean literal "a == b" for two IntVars, which may
// have differing domains; values outside the overlap can never match.
func (m *Model) IntVarsEq(a, b *IntVar) BoolVar {
	lo := a.lo
	if b.lo > lo {
		lo = b.lo
	}
	hi := a.hi
	if b.hi < hi {
		hi = b.hi
	}
	if lo > hi {
		return BoolVar{lit: m.falseLit()}
	}
	matches := make([]z.Lit, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		matches = append(matches, m.c.And(a.onehot[v-a.lo], b.onehot[v-b.lo]))
	}
	return BoolVar{lit: m.c.Ors(matches...)}
}

// CardinalityLeq returns the boolean literal "at most n of lits are true".
func (m *Model) CardinalityLeq(lits []BoolVar, n int) BoolVar {
	return BoolVar{lit: m.c.CardSort(unwrap(lits)).Leq(n)}
}

// CardinalityGeq returns the boolean literal "at least n of lits are true".
func (m *Model) CardinalityGeq(lits []BoolVar, n int) BoolVar {
	return BoolVar{lit: m.c.CardSort(unwrap(lits)).Geq(n)}
}

// CardinalityEq returns the boolean literal "exactly n of lits are true".
func (m *Model) CardinalityEq(lits []BoolVar, n int) BoolVar {
	cs := m.c.CardSort(unwrap(lits))
	return BoolVar{lit: m.c.And(cs.Leq(n), cs.Geq(n))}
}

// Solution is the outcome of a Solve or Maximize call.
type Solution struct {
	sat   *gini.Gini
	model *Model
}

// BoolValue returns the solved truth value of b.
func (s *Solution) BoolValue(b BoolVar) bool {
	return s.sat.Value(b.lit)
}

// IntValue returns the solved integer value of v.
func (s *Solution) IntValue(v *IntVar) int {
	for i, lit := range v.onehot {
		if s.sat.Value(lit) {
			return v.lo + i
		}
	}
	return v.lo
}

func (m *Model) compile() *gini.Gini {
	g := gini.New()
	m.c.ToCnf(g)
	return g
}

func (m *Model) assumptions() []z.Lit {
	lits := make([]z.Lit, 0, len(m.pending))
	for _, c := range m.pending {
		if c.unconditional || !c.settled {
			lits = append(lits, c.lit)
		}
	}
	return lits
}

// Solve finds any assignment satisfying every constraint added to m. It
// returns ErrInfeasible-wrapping behavior via a boolean result rather than a
// sentinel, mirroring cp_model's status-based Solve; callers needing the
// layout package's ErrInfeasible sentinel translate a false result
// themselves.
func (m *Model) Solve(ctx context.Context) (*Solution, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	g := m.compile()
	g.Assume(m.assumptions()...)
	switch g.Solve() {
	case 1:
		return &Solution{sat: g, model: m}, true, nil
	case -1:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("cpsat: solve returned an indeterminate result")
	}
}

// Maximize adds v to the objective with the given weight. Calling Maximize
// more than once accumulates a linear objective sum(weight*v).
func (m *Model) Maximize(v *IntVar, weight int) {
	m.objective = append(m.objective, objTerm{v: v, weight: weight})
}

func (m *Model) objectiveBounds() (lo, hi int) {
	for _, t := range m.objective {
		a, b := t.weight*t.v.lo, t.weight*t.v.hi
		if a > b {
			a, b = b, a
		}
		lo += a
		hi += b
	}
	return lo, hi
}

// objectiveGeq returns the literal "the weighted objective sum >= floor",
// built from a running-total ladder over every term's one-hot domain.
// SolveMaximize calls it once per floor value of its linear
// incumbent-tightening search, so only one such literal is built per solve.
func (m *Model) objectiveGeq(floor int) BoolVar {
	// sum(weight*v) >= floor  <=>  OR over all one-hot assignments whose
	// weighted sum reaches floor. Since every IntVar is one-hot, enumerate
	// the Cartesian product lazily is exponential in general; instead we
	// build it termwise using a running-total ladder of auxiliary ints.
	if len(m.objective) == 0 {
		if floor <= 0 {
			return BoolVar{lit: m.trueLit}
		}
		return BoolVar{lit: m.falseLit()}
	}
	runningLo, runningHi := 0, 0
	var accum []z.Lit // accum[i] true iff partial sum so far equals runningLo+i
	first := m.objective[0]
	width := absInt(first.weight)*(first.v.hi-first.v.lo) + 1
	accum = make([]z.Lit, width)
	base := 0
	if first.weight < 0 {
		base = first.weight * first.v.hi
	} else {
		base = first.weight * first.v.lo
	}
	for i := first.v.lo; i <= first.v.hi; i++ {
		val := first.weight * i
		accum[val-base] = first.v.onehot[i-first.v.lo]
	}
	for i := range accum {
		if accum[i] == z.LitNull {
			accum[i] = m.falseLit()
		}
	}
	runningLo, runningHi = base, base+width-1

	for _, t := range m.objective[1:] {
		newLo := runningLo
		if t.weight < 0 {
			newLo += t.weight * t.v.hi
		} else {
			newLo += t.weight * t.v.lo
		}
		newHi := runningHi
		if t.weight < 0 {
			newHi += t.weight * t.v.lo
		} else {
			newHi += t.weight * t.v.hi
		}
		newAccum := make([]z.Lit, newHi-newLo+1)
		for i := range newAccum {
			newAccum[i] = m.falseLit()
		}
		for i, prevLit := range accum {
			prevVal := runningLo + i
			for tv := t.v.lo; tv <= t.v.hi; tv++ {
				sum := prevVal + t.weight*tv
				term := m.c.And(prevLit, t.v.onehot[tv-t.v.lo])
				newAccum[sum-newLo] = m.c.Or(newAccum[sum-newLo], term)
			}
		}
		accum, runningLo, runningHi = newAccum, newLo, newHi
	}

	if floor <= runningLo {
		return BoolVar{lit: m.trueLit}
	}
	if floor > runningHi {
		return BoolVar{lit: m.falseLit()}
	}
	var ors []z.Lit
	for i, lit := range accum {
		if runningLo+i >= floor {
			ors = append(ors, lit)
		}
	}
	return BoolVar{lit: m.c.Ors(ors...)}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
