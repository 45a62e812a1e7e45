// Package lvpoly is a small toolkit for sparse single-variable polynomials:
// a value type with exact like-term bookkeeping, a canonical text format and
// a command-line calculator on top.
//
// 🚀 What is lvpoly?
//
//	A pure-Go library that brings together:
//		• Sparse terms: (coefficient, exponent) pairs, only what is present
//		• Arithmetic: Add (linear merge), Multiply (cross product + sort-merge)
//		• Evaluation: Σ c·x^e with math.Pow semantics
//		• Text forms: display ("2x^0 + 8x^1") and canonical ("2 2 0 8 1")
//
// ✨ Why choose lvpoly?
//
//   - One invariant – terms sorted by exponent, one term per exponent
//   - Immutable values – safe to share across goroutines, no locks
//   - Explicit errors – every parse failure matches a sentinel via errors.Is
//
// Layout:
//
//	poly/          — Term, Polynomial, arithmetic, evaluation, text codecs
//	cmd/polycalc/  — reads two polynomials, prints sum, product and their values at x
//
//	go get github.com/katalvlaran/lvpoly/poly
package lvpoly
