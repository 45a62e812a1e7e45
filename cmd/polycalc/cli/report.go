package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lvpoly/poly"
)

// result holds everything polycalc prints.
type result struct {
	inputs
	Sum, Product poly.Polynomial
	Timings      []timing
}

func compute(in inputs) result {
	return result{
		inputs:  in,
		Sum:     in.P.Add(in.Q),
		Product: in.P.Multiply(in.Q),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// writeTable renders the four polynomials with term counts and values at x,
// followed by a timing table when timings were collected.
func writeTable(w io.Writer, r result) error {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Polynomial", "Terms", "Value at x="+formatFloat(r.X))
	rows := []struct {
		name string
		p    poly.Polynomial
	}{
		{"P", r.P},
		{"Q", r.Q},
		{"P + Q", r.Sum},
		{"P * Q", r.Product},
	}
	for _, row := range rows {
		err := table.Append([]string{
			row.name,
			row.p.String(),
			humanize.Comma(int64(row.p.Len())),
			formatFloat(row.p.Evaluate(r.X)),
		})
		if err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if len(r.Timings) == 0 {
		return nil
	}
	tt := tablewriter.NewWriter(w)
	tt.Header("Operation", "Runs", "Total", "Per op")
	for _, t := range r.Timings {
		err := tt.Append([]string{t.Op, humanize.Comma(int64(t.Runs)), t.Total.String(), t.PerOp().String()})
		if err != nil {
			return fmt.Errorf("rendering timings: %w", err)
		}
	}
	if err := tt.Render(); err != nil {
		return fmt.Errorf("rendering timings: %w", err)
	}

	return nil
}

// writeCanonical prints one "<name> <value>" line per result, polynomials in
// canonical text form, for scripts.
func writeCanonical(w io.Writer, r result) error {
	sum, err := r.Sum.MarshalText()
	if err != nil {
		return fmt.Errorf("encoding sum: %w", err)
	}
	product, err := r.Product.MarshalText()
	if err != nil {
		return fmt.Errorf("encoding product: %w", err)
	}
	lines := []string{
		"sum " + string(sum),
		"product " + string(product),
		"sum_at " + formatFloat(r.X) + " " + formatFloat(r.Sum.Evaluate(r.X)),
		"product_at " + formatFloat(r.X) + " " + formatFloat(r.Product.Evaluate(r.X)),
	}
	for _, t := range r.Timings {
		lines = append(lines, fmt.Sprintf("time_%s %d %d", t.Op, t.Runs, t.Total.Nanoseconds()))
	}
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}
