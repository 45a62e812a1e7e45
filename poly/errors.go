// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// Every error returned by this package matches one of the sentinels below via
// errors.Is. Arithmetic never fails; only construction and parsing return
// errors. Panics are reserved for programmer errors (invalid Option values,
// MustFromTerms on bad input).

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCount is returned when the leading term count is not a
	// non-negative integer.
	ErrBadCount = errors.New("poly: invalid term count")

	// ErrTooManyTerms is returned when the declared term count exceeds the
	// configured limit (see WithMaxTerms).
	ErrTooManyTerms = errors.New("poly: too many terms")

	// ErrMalformedTerm indicates a coefficient or exponent token that does
	// not parse as a number.
	ErrMalformedTerm = errors.New("poly: malformed term")

	// ErrTruncated indicates the input ended before all declared terms were read.
	ErrTruncated = errors.New("poly: truncated input")

	// ErrTrailingData is returned by UnmarshalText when tokens follow the
	// declared terms.
	ErrTrailingData = errors.New("poly: trailing data after terms")

	// ErrNonFinite signals a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("poly: NaN or Inf coefficient")

	// ErrNegativeExponent is returned under WithNonNegativeExponents when a
	// term carries an exponent < 0.
	ErrNegativeExponent = errors.New("poly: negative exponent")
)

// ParseError reports where decoding failed. Index is the zero-based term
// index, or -1 when the failure concerns the leading count or the expression
// as a whole.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		if e.Token == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %q", e.Err, e.Token)
	}
	if e.Token == "" {
		return fmt.Sprintf("%v (term %d)", e.Err, e.Index)
	}
	return fmt.Sprintf("%v (term %d): %q", e.Err, e.Index, e.Token)
}

// Unwrap returns the underlying sentinel so errors.Is keeps working.
func (e *ParseError) Unwrap() error { return e.Err }
