// SPDX-License-Identifier: MIT

package poly

import (
	"strconv"
	"strings"
)

const (
	termSep   = " + "
	powMarker = "x^"
)

// String renders p for display, e.g. "2x^0 + 8x^1 + 1x^2".
//
// Every term is written as <coeff>x^<exp> in ascending exponent order, with
// no sign folding ("1x^0 + -3x^2") and no trailing separator. The zero
// polynomial renders as "0". Coefficients use the shortest representation
// that parses back to the same float64. NaN and ±Inf coefficients left by
// overflowing arithmetic are rendered too, but ParseExpr rejects them.
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			sb.WriteString(termSep)
		}
		sb.WriteString(formatCoeff(t.Coeff))
		sb.WriteString(powMarker)
		sb.WriteString(strconv.Itoa(t.Exp))
	}

	return sb.String()
}

// ParseExpr parses the display form produced by String. It also accepts a
// dangling " + " after the last term and terms in any order; like terms
// are combined exactly as FromTerms does.
//
// Errors match ErrMalformedTerm or ErrTruncated (empty input), plus the
// FromTerms validation sentinels.
func ParseExpr(s string, opts ...Option) (Polynomial, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "+"))
	if s == "" {
		return Polynomial{}, &ParseError{Index: -1, Err: ErrTruncated}
	}
	if s == "0" {
		return Polynomial{}, nil
	}

	parts := strings.Split(s, termSep)
	terms := make([]Term, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		t, ok := parseDisplayTerm(part)
		if !ok {
			return Polynomial{}, &ParseError{Index: i, Token: part, Err: ErrMalformedTerm}
		}
		terms = append(terms, t)
	}

	return FromTerms(terms, opts...)
}

// parseDisplayTerm reads "<coeff>x^<exp>".
func parseDisplayTerm(s string) (Term, bool) {
	c, e, found := strings.Cut(s, powMarker)
	if !found {
		return Term{}, false
	}
	coeff, err := strconv.ParseFloat(c, 64)
	if err != nil {
		return Term{}, false
	}
	exp, err := strconv.Atoi(e)
	if err != nil {
		return Term{}, false
	}

	return Term{Coeff: coeff, Exp: exp}, true
}

func formatCoeff(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
