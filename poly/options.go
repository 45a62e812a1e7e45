// SPDX-License-Identifier: MIT

// Package poly: functional configuration for construction and parsing.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that resolves a ...Option list.
//
// Options only affect how terms enter a Polynomial (FromTerms, Decode,
// ParseExpr, UnmarshalText). Arithmetic always runs with the defaults.
package poly

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the magnitude at or below which a combined
	// coefficient is dropped. 0 means only exact zeros are dropped.
	DefaultEpsilon = 0.0

	// DefaultKeepZeros keeps zero-coefficient terms when true.
	DefaultKeepZeros = false

	// DefaultNonNegativeExponents rejects exponents < 0 when true.
	DefaultNonNegativeExponents = false

	// DefaultMaxTerms caps the declared count accepted by Decode.
	DefaultMaxTerms = 1 << 20
)

const (
	panicEpsilonInvalid  = "poly: WithEpsilon: eps must be finite, non-negative"
	panicMaxTermsInvalid = "poly: WithMaxTerms: n must be >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	eps         float64
	keepZeros   bool
	nonNegative bool
	maxTerms    int
}

// WithEpsilon drops merged terms whose |coefficient| <= eps.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("%s (got %v)", panicEpsilonInvalid, eps))
	}

	return func(o *options) { o.eps = eps }
}

// WithKeepZeros keeps terms whose merged coefficient is zero (or within eps).
func WithKeepZeros() Option {
	return func(o *options) { o.keepZeros = true }
}

// WithNonNegativeExponents rejects terms with a negative exponent
// (ErrNegativeExponent).
func WithNonNegativeExponents() Option {
	return func(o *options) { o.nonNegative = true }
}

// WithMaxTerms limits the term count Decode accepts. n == 0 allows only the
// zero polynomial. Panics if n < 0.
func WithMaxTerms(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("%s (got %d)", panicMaxTermsInvalid, n))
	}

	return func(o *options) { o.maxTerms = n }
}

func defaultOptions() options {
	return options{
		eps:         DefaultEpsilon,
		keepZeros:   DefaultKeepZeros,
		nonNegative: DefaultNonNegativeExponents,
		maxTerms:    DefaultMaxTerms,
	}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// drop reports whether a merged coefficient should be discarded.
func (o options) drop(c float64) bool {
	if o.keepZeros {
		return false
	}

	return math.Abs(c) <= o.eps
}
