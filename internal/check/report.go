package check

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one property.
type Result struct {
	Name     string
	Samples  int
	Failures int
	// Counterexample describes the first failing sample, if any.
	Counterexample string
	Digest         uint64
	Elapsed        time.Duration
}

func (r Result) Passed() bool { return r.Failures == 0 }

// Report collects the results of a run in property registry order.
type Report struct {
	RunID   uuid.UUID
	Seed    uint64
	Samples int
	Results []Result
	// Digest covers every property name and digest in order; two runs with
	// the same seed, sample count and selection produce the same value.
	Digest  uint64
	Elapsed time.Duration
}

// Passed reports whether every property held for every sample.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

func (r *Report) Failures() int {
	var n int
	for _, res := range r.Results {
		n += res.Failures
	}
	return n
}

// WriteTo prints a human readable summary.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "run %s  seed %d  samples %d\n\n", r.RunID, r.Seed, r.Samples)
	_, _ = fmt.Fprintln(tw, "PROPERTY\tSTATUS\tFAILURES\tDIGEST\tELAPSED")
	for _, res := range r.Results {
		status := "ok"
		if !res.Passed() {
			status = "FAIL"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\t%s\n",
			res.Name, status, res.Failures, res.Samples, formatDigest(res.Digest), res.Elapsed.Round(time.Microsecond))
	}
	if err := tw.Flush(); err != nil {
		return cw.n, err
	}

	for _, res := range r.Results {
		if res.Counterexample != "" {
			_, _ = fmt.Fprintf(cw, "\n%s: %s\n", res.Name, res.Counterexample)
		}
	}
	_, _ = fmt.Fprintf(cw, "\ndigest %s  elapsed %s\n", formatDigest(r.Digest), r.Elapsed.Round(time.Microsecond))

	return cw.n, cw.err
}

func formatDigest(d uint64) string { return fmt.Sprintf("%016x", d) }

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
