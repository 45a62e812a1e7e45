package poly_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpoly/poly"
)

// TestDecode_Basic reads a count and pairs spread over several lines.
func TestDecode_Basic(t *testing.T) {
	p, err := poly.Decode(strings.NewReader("3\n1 2\n-0.5 0\n4 1\n"))
	require.NoError(t, err)
	assert.Equal(t, []poly.Term{T(-0.5, 0), T(4, 1), T(1, 2)}, p.Terms(), "terms are sorted on decode")
}

// TestDecode_MergesDuplicates ensures like terms are combined at parse time,
// so Add's merge precondition always holds.
func TestDecode_MergesDuplicates(t *testing.T) {
	p, err := poly.Decode(strings.NewReader("4  1 1  2 0  3 1  -2 0"))
	require.NoError(t, err)
	assert.Equal(t, []poly.Term{T(4, 1)}, p.Terms())

	q, err := poly.Decode(strings.NewReader("2 1 1 -1 1"), poly.WithKeepZeros())
	require.NoError(t, err)
	assert.Equal(t, []poly.Term{T(0, 1)}, q.Terms())
}

// TestDecode_ZeroCount yields the zero polynomial.
func TestDecode_ZeroCount(t *testing.T) {
	p, err := poly.Decode(strings.NewReader("0"))
	require.NoError(t, err)
	assert.True(t, p.IsZero())
}

// TestDecode_Errors is a table over the parse error taxonomy.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		opts  []poly.Option
		want  error
		index int
	}{
		{"empty", "", nil, poly.ErrTruncated, -1},
		{"non-numeric count", "x 1 2", nil, poly.ErrBadCount, -1},
		{"negative count", "-1", nil, poly.ErrBadCount, -1},
		{"fractional count", "1.5 1 1", nil, poly.ErrBadCount, -1},
		{"count over limit", "3 1 0 1 1 1 2", []poly.Option{poly.WithMaxTerms(2)}, poly.ErrTooManyTerms, -1},
		{"missing pair", "2 1 0", nil, poly.ErrTruncated, 1},
		{"missing exponent", "1 5", nil, poly.ErrTruncated, 0},
		{"bad coefficient", "1 abc 0", nil, poly.ErrMalformedTerm, 0},
		{"float exponent", "2 1 0 1 1.5", nil, poly.ErrMalformedTerm, 1},
		{"nan", "1 NaN 0", nil, poly.ErrNonFinite, 0},
		{"inf", "2 1 0 -Inf 3", nil, poly.ErrNonFinite, 1},
		{"negative exponent", "1 1 -2", []poly.Option{poly.WithNonNegativeExponents()}, poly.ErrNegativeExponent, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := poly.Decode(strings.NewReader(tc.in), tc.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var pe *poly.ParseError
			require.True(t, errors.As(err, &pe), "error must be a *ParseError: %v", err)
			assert.Equal(t, tc.index, pe.Index)
		})
	}
}

// TestDecoder_Sequence reads two polynomials and a point from one stream,
// the way the polycalc shell does.
func TestDecoder_Sequence(t *testing.T) {
	d := poly.NewDecoder(strings.NewReader("2 2 0 3 1\n2 5 1 1 2\n1.5\n"))

	p, err := d.Decode()
	require.NoError(t, err)
	q, err := d.Decode()
	require.NoError(t, err)
	x, err := d.DecodeFloat()
	require.NoError(t, err)

	assert.Equal(t, 1.5, x)
	assert.Equal(t, []poly.Term{T(2, 0), T(8, 1), T(1, 2)}, p.Add(q).Terms())

	_, err = d.Decode()
	assert.Equal(t, io.EOF, err, "clean end of stream is io.EOF")
	_, err = d.DecodeFloat()
	assert.Equal(t, io.EOF, err)
}

// TestDecoder_BadFloat reports a malformed evaluation point.
func TestDecoder_BadFloat(t *testing.T) {
	_, err := poly.NewDecoder(strings.NewReader("seven")).DecodeFloat()
	assert.ErrorIs(t, err, poly.ErrMalformedTerm)
}

// TestEncode_RoundTrip checks Encode → Decode reproduces the same terms.
func TestEncode_RoundTrip(t *testing.T) {
	polys := []poly.Polynomial{
		poly.Zero(),
		poly.MustFromTerms(T(2, 0), T(8, 1), T(1, 2)),
		poly.MustFromTerms(T(0.1, -3), T(-1e-300, 0), T(6.02214076e23, 40)),
	}
	for _, p := range polys {
		var buf bytes.Buffer
		require.NoError(t, poly.Encode(&buf, p))
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))

		got, err := poly.Decode(&buf)
		require.NoError(t, err)
		if diff := cmp.Diff(p.Terms(), got.Terms()); diff != "" {
			t.Fatalf("round trip mismatch for %v (-want +got):\n%s", p, diff)
		}
	}
}

// TestMarshalText checks the canonical text and the TextUnmarshaler contract.
func TestMarshalText(t *testing.T) {
	p := poly.MustFromTerms(T(1, 2), T(-0.5, 0))
	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2 -0.5 0 1 2", string(text))

	zero, _ := poly.Zero().MarshalText()
	assert.Equal(t, "0", string(zero))

	var q poly.Polynomial
	require.NoError(t, q.UnmarshalText(text))
	assert.True(t, p.Equal(q))

	keep := q
	err = keep.UnmarshalText([]byte("1 1 0 7"))
	assert.ErrorIs(t, err, poly.ErrTrailingData)
	assert.True(t, keep.Equal(q), "receiver untouched on error")

	assert.ErrorIs(t, keep.UnmarshalText(nil), poly.ErrTruncated)
}

// TestMarshalText_NonFinite refuses overflowed coefficients Decode could not read back.
func TestMarshalText_NonFinite(t *testing.T) {
	big := poly.Monomial(1e200, 1)
	sq := big.Multiply(big)
	require.True(t, math.IsInf(sq.Coefficient(2), 1))

	_, err := sq.MarshalText()
	assert.ErrorIs(t, err, poly.ErrNonFinite)

	var buf bytes.Buffer
	assert.ErrorIs(t, poly.Encode(&buf, sq), poly.ErrNonFinite)
	assert.Zero(t, buf.Len(), "nothing written on failure")

	nan := poly.Monomial(math.MaxFloat64, 0).Scale(10).Add(poly.Monomial(-math.MaxFloat64, 0).Scale(10))
	_, err = nan.MarshalText()
	assert.ErrorIs(t, err, poly.ErrNonFinite)

	assert.Contains(t, sq.String(), "+Infx^2", "display still renders the value")
}

// failWriter always fails.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestEncode_WriteError wraps writer failures.
func TestEncode_WriteError(t *testing.T) {
	err := poly.Encode(failWriter{}, poly.Constant(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
