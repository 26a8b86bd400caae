package layout

import (
	"math"

	"github.com/mtcelestema/nuclearcraft-designer/pkg/cpsat"
)

// ScaledOps performs fixed-point decimal arithmetic at a fixed number of
// scaling digits, the same trick the CP-SAT backend's IntVar domain (which
// has no native fractional type) needs: a real value x is represented as
// round(x * 10^ScalingFactor), multiplication/division compose that scaled
// representation, and Unscale converts back for reporting.
type ScaledOps struct {
	ScalingFactor int
}

func (s ScaledOps) factor() int64 {
	return int64(math.Pow10(s.ScalingFactor))
}

// Scale converts a real value into its fixed-point integer representation.
func (s ScaledOps) Scale(x float64) int {
	return int(math.Round(x * float64(s.factor())))
}

// Unscale converts a fixed-point integer representation back to a float.
func (s ScaledOps) Unscale(x int) float64 {
	return float64(x) / float64(s.factor())
}

// Mul computes (a*b) at the scaled representation's precision: the product
// of two scaled values is scaled by 10^(2*ScalingFactor), so the result is
// truncated back down by one factor.
func (s ScaledOps) Mul(a, b int) int {
	return int(int64(a) * int64(b) / s.factor())
}

// Div computes a/b at the scaled representation's precision, rescaling the
// numerator up by one factor before the integer division so the quotient
// doesn't collapse to zero.
func (s ScaledOps) Div(num, denom int) int {
	if denom == 0 {
		return 0
	}
	return int(int64(num) * s.factor() / int64(denom))
}

// EncodeMul asserts target == Mul(a, b) on a CP-style model, mirroring Mul's
// semantics via an intermediate unscaled product and a constant-denominator
// division, exactly as the original scaled-multiplication gadget composes
// AddMultiplicationEquality with AddDivisionEquality.
func (s ScaledOps) EncodeMul(m *cpsat.Model, target, a, b *cpsat.IntVar) {
	lo := a.Lo() * b.Lo()
	hi := lo
	for _, p := range []int{a.Lo() * b.Hi(), a.Hi() * b.Lo(), a.Hi() * b.Hi()} {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	product := m.NewIntVar(lo, hi, "scaled_mul_product")
	m.AddMultiplicationEquality(product, a, b)
	denom := m.NewConstant(int(s.factor()), "scaling_factor")
	m.AddDivisionEquality(target, product, denom)
}

// EncodeDiv asserts target == Div(num, denom) on a CP-style model, scaling
// the numerator up by one factor before dividing. Unlike Div, which returns
// 0 for a zero denominator, the model forbids denom == 0.
func (s ScaledOps) EncodeDiv(m *cpsat.Model, target, num, denom *cpsat.IntVar) {
	scaledLo := num.Lo() * int(s.factor())
	scaledHi := num.Hi() * int(s.factor())
	if scaledLo > scaledHi {
		scaledLo, scaledHi = scaledHi, scaledLo
	}
	scaledNum := m.NewIntVar(scaledLo, scaledHi, "scaled_div_numerator")
	factorVar := m.NewConstant(int(s.factor()), "scaling_factor")
	m.AddMultiplicationEquality(scaledNum, num, factorVar)
	m.AddDivisionEquality(target, scaledNum, denom)
}
