// SPDX-License-Identifier: MIT

// Package poly defines the Term and Polynomial value types.
package poly

// Term is a single monomial Coeff·x^Exp.
//
// Exp is a signed integer: negative exponents are representable and are
// evaluated with math.Pow semantics (see Evaluate).
type Term struct {
	Coeff float64
	Exp   int
}

// Polynomial is an immutable sparse polynomial in one variable.
//
// Invariants (maintained by every constructor and operation):
//   - terms are sorted by strictly increasing Exp;
//   - at most one term per exponent (like terms are combined);
//   - under the default policy no term has a zero coefficient.
//
// The zero value is the zero polynomial (no terms). Polynomials are values:
// Add, Multiply and friends return new Polynomials and never touch their
// operands, so a Polynomial may be read from many goroutines at once.
type Polynomial struct {
	terms []Term
}

// Zero returns the zero polynomial. It is equivalent to Polynomial{}.
func Zero() Polynomial {
	return Polynomial{}
}
