package cli

import (
	"time"

	"github.com/sjmudd/stopwatch"

	"github.com/katalvlaran/lvpoly/poly"
)

const (
	opAdd      = "add"
	opMultiply = "multiply"
)

// timing is the measured cost of one operation.
type timing struct {
	Op    string
	Runs  int
	Total time.Duration
}

// PerOp is the mean duration of a single run.
func (t timing) PerOp() time.Duration {
	if t.Runs == 0 {
		return 0
	}

	return t.Total / time.Duration(t.Runs)
}

// timeOps runs Add and Multiply on p, q `runs` times each, measured with
// named stopwatches.
func timeOps(p, q poly.Polynomial, runs int) []timing {
	sw := stopwatch.NewNamedStopwatch()
	sw.AddMany([]string{opAdd, opMultiply})

	sw.Start(opAdd)
	for i := 0; i < runs; i++ {
		_ = p.Add(q)
	}
	sw.Stop(opAdd)

	sw.Start(opMultiply)
	for i := 0; i < runs; i++ {
		_ = p.Multiply(q)
	}
	sw.Stop(opMultiply)

	return []timing{
		{Op: opAdd, Runs: runs, Total: sw.Elapsed(opAdd)},
		{Op: opMultiply, Runs: runs, Total: sw.Elapsed(opMultiply)},
	}
}
