// SPDX-License-Identifier: MIT

package poly

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Evaluate returns Σ coeff·x^exp.
//
// Powers follow math.Pow: x^0 == 1 for every x (including 0 and NaN), and a
// negative exponent at x == 0 yields ±Inf (or NaN once infinities of both
// signs meet). Such results are returned as-is, not reported as errors.
// The zero polynomial evaluates to 0.
func (p Polynomial) Evaluate(x float64) float64 {
	var sum float64
	for _, t := range p.terms {
		sum += t.Coeff * math.Pow(x, float64(t.Exp))
	}

	return sum
}

// EvaluateAll evaluates p at every point of xs.
func (p Polynomial) EvaluateAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Evaluate(x)
	}

	return out
}

// ApproxEqual reports whether p and q agree coefficient by coefficient
// within absTol or relTol (gonum scalar.EqualWithinAbsOrRel). A term
// present on one side only is compared against 0.
func (p Polynomial) ApproxEqual(q Polynomial, absTol, relTol float64) bool {
	a, b := p.terms, q.terms
	eq := func(x, y float64) bool { return scalar.EqualWithinAbsOrRel(x, y, absTol, relTol) }

	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i].Exp < b[j].Exp):
			if !eq(a[i].Coeff, 0) {
				return false
			}
			i++
		case i == len(a) || b[j].Exp < a[i].Exp:
			if !eq(0, b[j].Coeff) {
				return false
			}
			j++
		default:
			if !eq(a[i].Coeff, b[j].Coeff) {
				return false
			}
			i++
			j++
		}
	}

	return true
}
