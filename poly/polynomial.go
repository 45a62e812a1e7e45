// SPDX-License-Identifier: MIT

package poly

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// FromTerms builds a Polynomial from terms given in any order.
// Implementation:
//   - Stage 1: validate every term (finite coefficient; exponent sign policy).
//   - Stage 2: copy and stable-sort by exponent.
//   - Stage 3: merge like terms in one linear pass and drop zero coefficients.
//
// Errors:
//   - ErrNonFinite        — a coefficient is NaN or ±Inf.
//   - ErrNegativeExponent — under WithNonNegativeExponents.
//
// Complexity: O(n log n) time, O(n) space. The input slice is not modified.
func FromTerms(terms []Term, opts ...Option) (Polynomial, error) {
	o := gatherOptions(opts...)
	for i, t := range terms {
		if err := o.check(t); err != nil {
			return Polynomial{}, fmt.Errorf("poly: term %d (%gx^%d): %w", i, t.Coeff, t.Exp, err)
		}
	}

	return Polynomial{terms: canonicalize(slices.Clone(terms), o)}, nil
}

// MustFromTerms is like FromTerms with default options but panics on error.
// Intended for literals in tests and examples.
func MustFromTerms(terms ...Term) Polynomial {
	p, err := FromTerms(terms)
	if err != nil {
		panic(err)
	}

	return p
}

// Monomial returns the single-term polynomial coeff·x^exp.
// A zero coefficient yields the zero polynomial.
func Monomial(coeff float64, exp int) Polynomial {
	return MustFromTerms(Term{Coeff: coeff, Exp: exp})
}

// Constant returns the polynomial c (a single x^0 term).
func Constant(c float64) Polynomial {
	return Monomial(c, 0)
}

// Terms returns a copy of the terms in ascending exponent order.
func (p Polynomial) Terms() []Term {
	return slices.Clone(p.terms)
}

// Len returns the number of stored terms.
func (p Polynomial) Len() int { return len(p.terms) }

// IsZero reports whether p has no terms.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the highest exponent present, or -1 for the zero
// polynomial. With negative exponents the degree itself may be negative.
func (p Polynomial) Degree() int {
	if len(p.terms) == 0 {
		return -1
	}

	return p.terms[len(p.terms)-1].Exp
}

// Coefficient returns the coefficient of x^exp (0 when absent).
func (p Polynomial) Coefficient(exp int) float64 {
	i, ok := slices.BinarySearchFunc(p.terms, exp, func(t Term, e int) int {
		return cmp.Compare(t.Exp, e)
	})
	if !ok {
		return 0
	}

	return p.terms[i].Coeff
}

// Equal reports whether p and q hold exactly the same terms.
func (p Polynomial) Equal(q Polynomial) bool {
	return slices.Equal(p.terms, q.terms)
}

// check validates a single incoming term against the numeric policy.
func (o options) check(t Term) error {
	if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
		return ErrNonFinite
	}
	if o.nonNegative && t.Exp < 0 {
		return ErrNegativeExponent
	}

	return nil
}

// canonicalize sorts terms by exponent in place and combines like terms.
// Stable sorting keeps the summation order of equal exponents equal to the
// input order, so results are deterministic.
func canonicalize(terms []Term, o options) []Term {
	slices.SortStableFunc(terms, func(a, b Term) int {
		return cmp.Compare(a.Exp, b.Exp)
	})

	return combineSorted(terms, o)
}

// combineSorted merges adjacent equal exponents of an already sorted slice,
// reusing its backing array. Returns nil when nothing survives.
func combineSorted(terms []Term, o options) []Term {
	out := terms[:0]
	for i := 0; i < len(terms); {
		acc := terms[i]
		j := i + 1
		for j < len(terms) && terms[j].Exp == acc.Exp {
			acc.Coeff += terms[j].Coeff
			j++
		}
		if !o.drop(acc.Coeff) {
			out = append(out, acc)
		}
		i = j
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
