// Package poly implements sparse single-variable polynomials with float64
// coefficients and signed integer exponents.
//
// 🚀 What is a sparse polynomial?
//
//	Only the terms that are present are stored, as (coefficient, exponent)
//	pairs. 3x^1000 + 1 costs two terms, not a thousand and one.
//
// ✨ Key features:
//   - value semantics: Polynomial is immutable; Add/Multiply return new values
//   - one canonical shape: terms sorted by exponent, like terms combined,
//     zero coefficients dropped; the zero value is the zero polynomial
//   - Add by linear two-pointer merge, Multiply by cross product + sort-merge
//   - Evaluate with math.Pow semantics (negative exponents allowed)
//   - display form via String / ParseExpr
//   - canonical text form "N c1 e1 … cN eN" via Encode / Decode / Decoder,
//     also wired to encoding.TextMarshaler / TextUnmarshaler
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvpoly/poly"
//
//	p, err := poly.Decode(strings.NewReader("2  2 0  3 1")) // 2 + 3x
//	if err != nil {
//	  // errors.Is(err, poly.ErrMalformedTerm), …
//	}
//	q := poly.MustFromTerms(poly.Term{Coeff: 5, Exp: 1}, poly.Term{Coeff: 1, Exp: 2})
//
//	fmt.Println(p.Add(q))             // 2x^0 + 8x^1 + 1x^2
//	fmt.Println(p.Multiply(q))        // 10x^1 + 17x^2 + 3x^3
//	fmt.Println(p.Add(q).Evaluate(1)) // 11
//
// Performance:
//
//   - Add:      O(n + m)
//   - Multiply: O(nm log nm) time, O(nm) memory
//   - Evaluate: O(n) calls to math.Pow
//
// Numeric policy: construction and decoding reject NaN/±Inf coefficients.
// Arithmetic itself never fails and may overflow to ±Inf like any float64
// computation; such results render with String but MarshalText and Encode
// refuse them (ErrNonFinite). Exponent sums in Multiply saturate at the int
// range. Evaluating a negative exponent at x = 0 yields ±Inf or NaN.
package poly
