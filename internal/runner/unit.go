// Package runner defines the runnable unit of the harness and the timing
// wrapper that executes it.
//
// A Unit pairs a behavior with a name and an id drawn from a Sequence. Ids
// are strictly increasing in construction order, so sorting by id is the
// same as sorting by registration order.
//
// Units are executed through a Benchmark, which prints the start and end
// banners, measures elapsed time with the monotonic clock and turns errors
// and panics raised by the behavior into a Result. Nothing raised by a
// behavior escapes a Benchmark.
package runner

import (
	"context"
	"reflect"
	"sync/atomic"
)

// Named is implemented by anything with a display name.
type Named interface {
	Name() string
}

// Identified is implemented by anything with a registry id.
type Identified interface {
	ID() int
}

// Runnable is the capability set the registry and dispatcher work with.
type Runnable interface {
	Named
	Identified
	Run(ctx context.Context) error
}

// Lesson is a demo program that can be turned into a Unit. Lessons that
// also implement Named choose their own name; otherwise the Go type name
// is used.
type Lesson interface {
	Run(ctx context.Context) error
}

// Sequence hands out unit ids. The zero value starts at 0.
type Sequence struct {
	next atomic.Int64
}

// Next returns the current value and advances the sequence.
func (s *Sequence) Next() int {
	return int(s.next.Add(1) - 1)
}

// Peek returns the id the next call to Next will return.
func (s *Sequence) Peek() int {
	return int(s.next.Load())
}

// DefaultSequence is the process-wide id source. It is never reset, so
// ids keep increasing across builders within one process.
var DefaultSequence = &Sequence{}

// Unit is one registered, runnable, named and numbered demo.
type Unit struct {
	id       int
	name     string
	behavior func(ctx context.Context) error
}

// NewUnit creates a unit and assigns it the next id from seq. A nil seq
// uses DefaultSequence.
func NewUnit(seq *Sequence, name string, behavior func(ctx context.Context) error) *Unit {
	if seq == nil {
		seq = DefaultSequence
	}
	return &Unit{
		id:       seq.Next(),
		name:     name,
		behavior: behavior,
	}
}

// NewLessonUnit creates a unit running lesson under NameOf(lesson).
func NewLessonUnit(seq *Sequence, lesson Lesson) *Unit {
	return NewUnit(seq, NameOf(lesson), lesson.Run)
}

// Name returns the unit's name.
func (u *Unit) Name() string { return u.name }

// ID returns the unit's id.
func (u *Unit) ID() int { return u.id }

// Run invokes the behavior directly. Callers that need failure isolation
// go through Execute.
func (u *Unit) Run(ctx context.Context) error {
	if u.behavior == nil {
		return nil
	}
	return u.behavior(ctx)
}

// Execute runs the unit through b.
func (u *Unit) Execute(ctx context.Context, b *Benchmark) Result {
	return b.Execute(ctx, u)
}

// NameOf returns the lesson's own name when it has one, or its Go type
// name with pointer indirection removed.
func NameOf(lesson Lesson) string {
	if n, ok := lesson.(Named); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}

	t := reflect.TypeOf(lesson)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
