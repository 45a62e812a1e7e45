// SPDX-License-Identifier: MIT

package poly

import "math"

// Add returns p + q.
//
// Algorithm (two-pointer merge, as in merging two sorted lists):
//  1. While both sequences have terms, compare the current exponents:
//     equal   → emit (c1+c2, e) and advance both;
//     smaller → emit that term unchanged and advance its side.
//  2. Append whatever tail remains.
//
// Both operands are sorted with unique exponents by construction, so the
// result is too. Like terms that cancel exactly are dropped.
//
// Complexity: O(|p| + |q|). Neither operand is modified.
func (p Polynomial) Add(q Polynomial) Polynomial {
	a, b := p.terms, q.terms
	out := make([]Term, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Exp == b[j].Exp:
			if c := a[i].Coeff + b[j].Coeff; c != 0 {
				out = append(out, Term{Coeff: c, Exp: a[i].Exp})
			}
			i++
			j++
		case a[i].Exp < b[j].Exp:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	if len(out) == 0 {
		return Polynomial{}
	}

	return Polynomial{terms: out}
}

// Multiply returns p · q.
//
// Algorithm:
//  1. Cross product: every pair (t1 ∈ p, t2 ∈ q) yields
//     (t1.Coeff·t2.Coeff, t1.Exp+t2.Exp), |p|·|q| terms in total.
//  2. Stable sort the products by exponent.
//  3. Merge adjacent equal exponents in one linear pass.
//
// The result is sorted ascending and holds at most |p|·|q| terms.
// Exponent sums saturate at math.MaxInt / math.MinInt instead of wrapping,
// so products past that range collapse onto the boundary exponent.
//
// Complexity: O(nm log nm) time, O(nm) space for n=|p|, m=|q|.
// Neither operand is modified.
func (p Polynomial) Multiply(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}

	products := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, t1 := range p.terms {
		for _, t2 := range q.terms {
			products = append(products, Term{
				Coeff: t1.Coeff * t2.Coeff,
				Exp:   addExp(t1.Exp, t2.Exp),
			})
		}
	}

	return Polynomial{terms: canonicalize(products, defaultOptions())}
}

// Scale returns k · p.
func (p Polynomial) Scale(k float64) Polynomial {
	if k == 0 || p.IsZero() {
		return Polynomial{}
	}

	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{Coeff: k * t.Coeff, Exp: t.Exp}
	}

	// Underflow may produce zeros; exponents are still sorted and unique.
	return Polynomial{terms: combineSorted(out, defaultOptions())}
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.Scale(-1)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// addExp returns a + b clamped to the int range.
func addExp(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}

	return a + b
}
