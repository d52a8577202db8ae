package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrOutOfStock is the sentinel returned by the ErrorPropagation lesson.
var ErrOutOfStock = errors.New("out of stock")

type step struct {
	name string
	out  io.Writer
}

func newStep(out io.Writer, name string) *step {
	fmt.Fprintf(out, "%s constructed\n", name)
	return &step{name: name, out: out}
}

func (s *step) release() { fmt.Fprintf(s.out, "%s released\n", s.name) }

func buildPipeline(out io.Writer) (err error) {
	first := newStep(out, "step1")
	defer first.release()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline aborted: %v", r)
		}
	}()

	second := newStep(out, "step2")
	defer second.release()

	var parts []string
	_ = parts[3] // index out of range
	return nil
}

// PanicRecovery shows unwinding order: deferred calls run in reverse while
// a panic propagates, and recover turns it into an ordinary error.
type PanicRecovery struct{ out io.Writer }

func (l *PanicRecovery) Run(context.Context) error {
	err := buildPipeline(l.out)
	fmt.Fprintf(l.out, "buildPipeline returned: %v\n", err)

	_, convErr := strconv.Atoi("forty-two")
	var numErr *strconv.NumError
	if errors.As(convErr, &numErr) {
		fmt.Fprintf(l.out, "typed error: func=%s input=%q\n", numErr.Func, numErr.Num)
	}
	return nil
}

func reserve(item string, qty int) error {
	if qty > 2 {
		return fmt.Errorf("reserve %d x %s: %w", qty, item, ErrOutOfStock)
	}
	return nil
}

func checkout(items map[string]int, order []string) error {
	for _, item := range order {
		if err := reserve(item, items[item]); err != nil {
			return fmt.Errorf("checkout: %w", err)
		}
	}
	return nil
}

// ErrorPropagation wraps an error through two layers and lets it escape
// the lesson, so the harness reports it as a failed run.
type ErrorPropagation struct{ out io.Writer }

func (l *ErrorPropagation) Run(context.Context) error {
	err := checkout(map[string]int{"apple": 1, "pear": 5}, []string{"apple", "pear"})
	fmt.Fprintf(l.out, "errors.Is(err, ErrOutOfStock): %t\n", errors.Is(err, ErrOutOfStock))
	return err
}
