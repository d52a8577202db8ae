// Package organizer selects and runs registered units.
//
// An Organizer owns a Builder (and through it the Registry) and a
// runner.Benchmark. Every dispatch call is synchronous: units run one after
// another on the calling goroutine, each through the Benchmark, so a unit
// that fails or panics is reported and the loop moves on to the next one.
//
//	org := organizer.New(organizer.WithOutput(os.Stdout))
//	org.Builder().
//		Add("Alpha", alpha).
//		Add("Beta", beta)
//	org.PrintDetails()
//	org.RunAll(ctx)
//
// Lookups that miss are not errors: RunByIDs and RunByNames skip unknown
// keys, NameByID returns "" and IDByName returns -1.
package organizer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/conneroisu/playground/internal/logging"
	"github.com/conneroisu/playground/internal/runner"
)

// Organizer is the dispatcher over a registry of units.
type Organizer struct {
	builder *Builder
	bench   *runner.Benchmark
	out     io.Writer
	logger  logging.Logger
}

type options struct {
	out     io.Writer
	logger  logging.Logger
	metrics *runner.RunMetrics
	seq     *runner.Sequence
}

// Option configures an Organizer.
type Option func(*options)

// WithOutput sets where banners and listings are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics shares a metrics tracker with the caller.
func WithMetrics(m *runner.RunMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithSequence injects the id source used by the builder.
func WithSequence(seq *runner.Sequence) Option {
	return func(o *options) { o.seq = seq }
}

// New creates an Organizer with an empty registry.
func New(opts ...Option) *Organizer {
	cfg := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.out == nil {
		cfg.out = io.Discard
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNopLogger()
	}

	return &Organizer{
		builder: NewBuilder(cfg.seq),
		bench:   runner.NewBenchmark(cfg.out, cfg.logger, cfg.metrics),
		out:     cfg.out,
		logger:  cfg.logger.WithComponent("organizer"),
	}
}

// Builder returns the builder used to register units.
func (o *Organizer) Builder() *Builder {
	return o.builder
}

// Metrics returns cumulative execution metrics.
func (o *Organizer) Metrics() *runner.RunMetrics {
	return o.bench.Metrics()
}

// RunAll executes every unit in id order.
func (o *Organizer) RunAll(ctx context.Context) Report {
	units := o.builder.registry.All()
	o.logger.Debug(ctx, "Running all units", "count", len(units))
	return o.run(ctx, units)
}

// RunByIDs executes the units with the given ids in the order given.
// Unknown ids are skipped.
func (o *Organizer) RunByIDs(ctx context.Context, ids ...int) Report {
	units := make([]runner.Runnable, 0, len(ids))
	for _, id := range ids {
		if u, ok := o.builder.registry.FindByID(id); ok {
			units = append(units, u)
		} else {
			o.logger.Debug(ctx, "Skipping unknown unit id", "unit_id", id)
		}
	}
	return o.run(ctx, units)
}

// RunByNames executes the first unit matching each name in the order
// given. Unknown names are skipped.
func (o *Organizer) RunByNames(ctx context.Context, names ...string) Report {
	units := make([]runner.Runnable, 0, len(names))
	for _, name := range names {
		if u, ok := o.builder.registry.FindByName(name); ok {
			units = append(units, u)
		} else {
			o.logger.Debug(ctx, "Skipping unknown unit name", "unit_name", name)
		}
	}
	return o.run(ctx, units)
}

func (o *Organizer) run(ctx context.Context, units []runner.Runnable) Report {
	report := make(Report, 0, len(units))
	for _, u := range units {
		if err := ctx.Err(); err != nil {
			o.logger.Warn(ctx, err, "Dispatch cancelled", "remaining", len(units)-len(report))
			break
		}
		report = append(report, o.bench.Execute(ctx, u))
	}
	return report
}

// Detail is one row of the listing.
type Detail struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Details returns the listing rows in id order.
func (o *Organizer) Details() []Detail {
	units := o.builder.registry.All()
	details := make([]Detail, len(units))
	for i, u := range units {
		details[i] = Detail{ID: u.ID(), Name: u.Name()}
	}
	return details
}

// PrintDetails writes the listing of every unit to the organizer's output.
func (o *Organizer) PrintDetails() {
	o.WriteDetails(o.out)
}

// WriteDetails writes the listing of every unit to w.
func (o *Organizer) WriteDetails(w io.Writer) {
	fmt.Fprint(w, "available items:")
	for _, d := range o.Details() {
		fmt.Fprintf(w, "\n%02d-name: %s", d.ID, d.Name)
	}
	fmt.Fprintln(w)
}

// NameByID returns the unit's name, or "" when no unit has the id.
func (o *Organizer) NameByID(id int) string {
	if u, ok := o.builder.registry.FindByID(id); ok {
		return u.Name()
	}
	return ""
}

// IDByName returns the id of the first unit with the name, or -1.
func (o *Organizer) IDByName(name string) int {
	if u, ok := o.builder.registry.FindByName(name); ok {
		return u.ID()
	}
	return -1
}
