package organizer

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/conneroisu/playground/internal/runner"
)

// Report holds the results of one dispatch call in execution order.
type Report []runner.Result

// Failed returns the results that did not succeed.
func (r Report) Failed() []runner.Result {
	var failed []runner.Result
	for _, res := range r {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every execution succeeded.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Total returns the summed duration of every execution.
func (r Report) Total() time.Duration {
	var total time.Duration
	for _, res := range r {
		total += res.Duration
	}
	return total
}

// WriteSummary writes a per-unit table followed by a totals line.
func (r Report) WriteSummary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOUTCOME\tMSEC")
	for _, res := range r {
		fmt.Fprintf(tw, "%02d\t%s\t%s\t%.2f\n", res.ID, res.Name, res.Outcome, res.Milliseconds())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d run, %d failed, %.2f msec total\n",
		len(r), len(r.Failed()), float64(r.Total().Nanoseconds())/float64(time.Millisecond))
	return err
}
