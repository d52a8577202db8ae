package organizer

import (
	"context"

	"github.com/conneroisu/playground/internal/registry"
	"github.com/conneroisu/playground/internal/runner"
)

// Builder constructs units and inserts them into the registry it owns.
// It is append-only.
type Builder struct {
	seq      *runner.Sequence
	registry *registry.Registry
}

// NewBuilder creates a builder with a fresh registry. A nil seq uses
// runner.DefaultSequence.
func NewBuilder(seq *runner.Sequence) *Builder {
	if seq == nil {
		seq = runner.DefaultSequence
	}
	return &Builder{
		seq:      seq,
		registry: registry.New(),
	}
}

// Add registers a unit running fn under name.
func (b *Builder) Add(name string, fn func(ctx context.Context) error) *Builder {
	return b.insert(runner.NewUnit(b.seq, name, fn))
}

// AddLesson registers a lesson under runner.NameOf(lesson).
func (b *Builder) AddLesson(lesson runner.Lesson) *Builder {
	return b.insert(runner.NewLessonUnit(b.seq, lesson))
}

// AddLessons registers each lesson in order.
func (b *Builder) AddLessons(lessons ...runner.Lesson) *Builder {
	for _, l := range lessons {
		b.AddLesson(l)
	}
	return b
}

// Registry returns the registry being built.
func (b *Builder) Registry() *registry.Registry {
	return b.registry
}

// insert panics on registration errors: ids come from the builder's own
// sequence, so a collision is a programming error.
func (b *Builder) insert(u *runner.Unit) *Builder {
	if err := b.registry.Add(u); err != nil {
		panic(err)
	}
	return b
}
