package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/conneroisu/playground/internal/errors"
	"github.com/conneroisu/playground/internal/logging"
)

// Outcome classifies how an execution ended.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeFailed
	OutcomePanicked
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomePanicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// Result describes one execution of a unit.
type Result struct {
	ID       int
	Name     string
	Outcome  Outcome
	Duration time.Duration
	Err      *errors.RunError
}

// OK reports whether the execution succeeded.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSucceeded
}

// Milliseconds returns the duration as fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Duration.Nanoseconds()) / float64(time.Millisecond)
}

// Benchmark is the timing wrapper. It writes the start and end banners to
// out, logs each execution and records it in metrics.
type Benchmark struct {
	out     io.Writer
	logger  logging.Logger
	metrics *RunMetrics
	now     func() time.Time
}

// NewBenchmark creates a Benchmark. A nil out discards banners, a nil
// logger discards logs and a nil metrics is replaced by a fresh one.
func NewBenchmark(out io.Writer, logger logging.Logger, metrics *RunMetrics) *Benchmark {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if metrics == nil {
		metrics = NewRunMetrics()
	}
	return &Benchmark{
		out:     out,
		logger:  logger.WithComponent("benchmark"),
		metrics: metrics,
		now:     time.Now,
	}
}

// Metrics returns the metrics every execution is recorded in.
func (b *Benchmark) Metrics() *RunMetrics {
	return b.metrics
}

// Execute runs r and always returns normally.
func (b *Benchmark) Execute(ctx context.Context, r Runnable) Result {
	id, name := r.ID(), r.Name()
	perf := logging.StartOperation(b.logger, "execute")

	fmt.Fprintf(b.out, "\n __START__ %d: %s is starting execute\n", id, name)

	start := b.now()
	runErr := b.invoke(ctx, r)
	elapsed := b.now().Sub(start)

	result := Result{ID: id, Name: name, Duration: elapsed}

	switch {
	case runErr == nil:
		result.Outcome = OutcomeSucceeded
		fmt.Fprintf(b.out, "\n  __END__  %d: %s completed in %.2f msec\n", id, name, result.Milliseconds())
		perf.End(ctx, "unit_id", id, "unit_name", name)
	case errors.IsUnhandled(runErr):
		result.Outcome = OutcomePanicked
		result.Err = runErr.WithUnit(id, name)
		fmt.Fprintf(b.out, "\nCode[%d]:%s failed to execute!\nUnhandled Exception occured!\n", id, name)
		perf.EndWithError(ctx, runErr, "unit_id", id, "unit_name", name)
	default:
		result.Outcome = OutcomeFailed
		if errors.IsPanic(runErr) {
			result.Outcome = OutcomePanicked
		}
		result.Err = runErr.WithUnit(id, name)
		fmt.Fprintf(b.out, "\nCode[%d]:%s failed to execute!\nException message:\n%s\n", id, name, runErr.Detail())
		perf.EndWithError(ctx, runErr, "unit_id", id, "unit_name", name)
	}

	b.metrics.Record(result)
	return result
}

// invoke calls the behavior, converting returned errors and panics.
func (b *Benchmark) invoke(ctx context.Context, r Runnable) (runErr *errors.RunError) {
	defer func() {
		if rec := recover(); rec != nil {
			runErr = errors.NewPanicError(rec)
		}
	}()

	if err := r.Run(ctx); err != nil {
		return errors.NewExecutionError(err)
	}
	return nil
}
