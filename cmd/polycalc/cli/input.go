package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/katalvlaran/lvpoly/poly"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// inputs are the values polycalc works on.
type inputs struct {
	P, Q poly.Polynomial
	X    float64
}

// openInput returns the configured input file (opened through fs) or stdin.
// The returned close func is always safe to call.
func openInput(fs afero.Fs, path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" {
		return stdin, func() error { return nil }, nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}

	return f, f.Close, nil
}

// readInputs decodes two polynomials and, unless cfg.XSet, the evaluation
// point from r. When prompt is non-nil a prompt is written to it before
// each value.
func readInputs(r io.Reader, cfg Config, prompt io.Writer) (inputs, error) {
	var in inputs
	d := poly.NewDecoder(r)
	opts := cfg.decodeOptions()

	ask := func(msg string) {
		if prompt != nil {
			fmt.Fprint(prompt, msg)
		}
	}

	var err error
	ask("First polynomial (term count, then coefficient/exponent pairs): ")
	if in.P, err = d.Decode(opts...); err != nil {
		return in, fmt.Errorf("reading first polynomial: %w", eofAsTruncated(err))
	}
	ask("Second polynomial (term count, then coefficient/exponent pairs): ")
	if in.Q, err = d.Decode(opts...); err != nil {
		return in, fmt.Errorf("reading second polynomial: %w", eofAsTruncated(err))
	}

	if cfg.XSet {
		in.X = cfg.X

		return in, nil
	}
	ask("Value of x: ")
	if in.X, err = d.DecodeFloat(); err != nil {
		if errors.Is(err, io.EOF) {
			return in, errors.New("reading x: no value in input (pass --x)")
		}

		return in, fmt.Errorf("reading x: %w", err)
	}

	return in, nil
}

func eofAsTruncated(err error) error {
	if errors.Is(err, io.EOF) {
		return poly.ErrTruncated
	}

	return err
}
