package lessons

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"strings"
)

// Stack is a generic LIFO container.
type Stack[T any] struct {
	items []T
}

// Push adds v to the top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// GenericContainer shows a type-parameterised container used with two
// element types.
type GenericContainer struct{ out io.Writer }

func (l *GenericContainer) Run(context.Context) error {
	var ints Stack[int]
	for i := 1; i <= 3; i++ {
		ints.Push(i * 10)
	}

	var words Stack[string]
	words.Push("go")
	words.Push("generics")

	for ints.Len() > 0 {
		v, _ := ints.Pop()
		fmt.Fprintf(l.out, "int %d\n", v)
	}
	w, _ := words.Pop()
	fmt.Fprintf(l.out, "string %s (remaining %d)\n", w, words.Len())

	_, ok := ints.Pop()
	fmt.Fprintf(l.out, "pop on empty ok=%t\n", ok)
	return nil
}

// Formatter is a policy deciding how a value is rendered.
type Formatter interface {
	Format(s string) string
}

type upperPolicy struct{}

func (upperPolicy) Format(s string) string { return strings.ToUpper(s) }

type bracketPolicy struct{}

func (bracketPolicy) Format(s string) string { return "[" + s + "]" }

// render is parameterised by its policy type, resolved at compile time.
func render[P Formatter](policy P, values ...string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = policy.Format(v)
	}
	return strings.Join(out, " ")
}

// maxOf works for any ordered type.
func maxOf[T cmp.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		m = max(m, v)
	}
	return m
}

// ConstraintPolicies shows type constraints and policy-based design with
// type parameters.
type ConstraintPolicies struct{ out io.Writer }

func (l *ConstraintPolicies) Run(context.Context) error {
	fmt.Fprintln(l.out, render(upperPolicy{}, "policy", "based"))
	fmt.Fprintln(l.out, render(bracketPolicy{}, "policy", "based"))
	fmt.Fprintf(l.out, "maxOf ints: %d\n", maxOf(3, 9, 4))
	fmt.Fprintf(l.out, "maxOf strings: %s\n", maxOf("pear", "apple", "zucchini"))
	return nil
}
