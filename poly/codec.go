// SPDX-License-Identifier: MIT

package poly

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Canonical text form:
//
//	N c1 e1 c2 e2 ... cN eN
//
// N is the term count, followed by N (coefficient, exponent) pairs. Tokens
// are separated by any run of whitespace, newlines included. Encode always
// writes single spaces, ascending exponents and a trailing newline.

// preallocCap bounds the up-front allocation for a declared term count, so a
// huge count on a short stream cannot allocate memory it never fills.
const preallocCap = 1024

// Decoder reads canonical polynomials, one after another, from a stream.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder returns a Decoder reading whitespace-separated tokens from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc}
}

// next returns the next token; ok is false at end of input or on a read
// error (reported by err).
func (d *Decoder) next() (tok string, ok bool, err error) {
	if d.sc.Scan() {
		return d.sc.Text(), true, nil
	}
	if err := d.sc.Err(); err != nil {
		return "", false, fmt.Errorf("poly: read: %w", err)
	}

	return "", false, nil
}

// Decode reads one polynomial: a count then that many pairs. Terms are
// validated against opts and normalized (sorted, like terms combined) before
// the Polynomial is returned.
//
// Returns io.EOF, unwrapped, when the stream ends cleanly before the count.
// Other failures are *ParseError values matching ErrBadCount,
// ErrTooManyTerms, ErrMalformedTerm, ErrTruncated, ErrNonFinite or
// ErrNegativeExponent.
func (d *Decoder) Decode(opts ...Option) (Polynomial, error) {
	o := gatherOptions(opts...)

	tok, ok, err := d.next()
	if err != nil {
		return Polynomial{}, err
	}
	if !ok {
		return Polynomial{}, io.EOF
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return Polynomial{}, &ParseError{Index: -1, Token: tok, Err: ErrBadCount}
	}
	if n > o.maxTerms {
		return Polynomial{}, &ParseError{Index: -1, Token: tok, Err: ErrTooManyTerms}
	}

	terms := make([]Term, 0, min(n, preallocCap))
	for i := 0; i < n; i++ {
		t, err := d.term(i)
		if err != nil {
			return Polynomial{}, err
		}
		if err := o.check(t); err != nil {
			return Polynomial{}, &ParseError{Index: i, Err: err}
		}
		terms = append(terms, t)
	}

	return Polynomial{terms: canonicalize(terms, o)}, nil
}

// term reads the i-th (coefficient, exponent) pair.
func (d *Decoder) term(i int) (Term, error) {
	ctok, ok, err := d.next()
	if err != nil {
		return Term{}, err
	}
	if !ok {
		return Term{}, &ParseError{Index: i, Err: ErrTruncated}
	}
	coeff, err := strconv.ParseFloat(ctok, 64)
	if err != nil {
		return Term{}, &ParseError{Index: i, Token: ctok, Err: ErrMalformedTerm}
	}

	etok, ok, err := d.next()
	if err != nil {
		return Term{}, err
	}
	if !ok {
		return Term{}, &ParseError{Index: i, Err: ErrTruncated}
	}
	exp, err := strconv.Atoi(etok)
	if err != nil {
		return Term{}, &ParseError{Index: i, Token: etok, Err: ErrMalformedTerm}
	}

	return Term{Coeff: coeff, Exp: exp}, nil
}

// DecodeFloat reads the next token as a float64. It lets callers interleave
// plain values (an evaluation point, say) with polynomials on one stream.
// Returns io.EOF at end of input.
func (d *Decoder) DecodeFloat() (float64, error) {
	tok, ok, err := d.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Index: -1, Token: tok, Err: ErrMalformedTerm}
	}

	return x, nil
}

// Decode reads exactly one polynomial from r. An empty stream is reported as
// ErrTruncated rather than io.EOF.
func Decode(r io.Reader, opts ...Option) (Polynomial, error) {
	p, err := NewDecoder(r).Decode(opts...)
	if errors.Is(err, io.EOF) {
		return Polynomial{}, &ParseError{Index: -1, Err: ErrTruncated}
	}

	return p, err
}

// Encode writes p to w in canonical form followed by a newline.
// Fails with ErrNonFinite when p holds a NaN or ±Inf coefficient.
func Encode(w io.Writer, p Polynomial) error {
	buf, err := p.MarshalText()
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("poly: write: %w", err)
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
// Arithmetic may overflow to NaN or ±Inf, which Decode rejects; such a
// polynomial fails with ErrNonFinite instead of producing unreadable text.
func (p Polynomial) MarshalText() ([]byte, error) {
	buf := strconv.AppendInt(nil, int64(len(p.terms)), 10)
	for i, t := range p.terms {
		if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
			return nil, fmt.Errorf("poly: term %d (%gx^%d): %w", i, t.Coeff, t.Exp, ErrNonFinite)
		}
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, t.Coeff, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(t.Exp), 10)
	}

	return buf, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must hold
// exactly one canonical polynomial; anything after it fails with
// ErrTrailingData. p is left untouched on error.
func (p *Polynomial) UnmarshalText(text []byte) error {
	d := NewDecoder(bytes.NewReader(text))
	q, err := d.Decode()
	if errors.Is(err, io.EOF) {
		return &ParseError{Index: -1, Err: ErrTruncated}
	}
	if err != nil {
		return err
	}
	tok, ok, err := d.next()
	if err != nil {
		return err
	}
	if ok {
		return &ParseError{Index: -1, Token: tok, Err: ErrTrailingData}
	}
	*p = q

	return nil
}
