package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Vector has value semantics, so == compares fields and methods on the
// value receiver never mutate the caller's copy.
type Vector struct {
	X, Y int
}

// Add returns v+o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

// Scale returns v*k.
func (v Vector) Scale(k int) Vector { return Vector{v.X * k, v.Y * k} }

func (v Vector) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }

// OperatorMethods shows how Go spells operator overloading: named methods,
// fmt.Stringer and comparable structs.
type OperatorMethods struct{ out io.Writer }

func (l *OperatorMethods) Run(context.Context) error {
	a, b := Vector{1, 2}, Vector{3, 4}

	fmt.Fprintf(l.out, "a=%v b=%v\n", a, b)
	fmt.Fprintf(l.out, "a.Add(b)=%v\n", a.Add(b))
	fmt.Fprintf(l.out, "a.Scale(3)=%v\n", a.Scale(3))
	fmt.Fprintf(l.out, "a == Vector{1, 2}: %t\n", a == Vector{1, 2})

	counts := map[Vector]int{a: 1}
	counts[Vector{1, 2}]++
	fmt.Fprintf(l.out, "struct keys compare by value: counts[a]=%d\n", counts[a])
	return nil
}

type animal struct{ name string }

func (a animal) Describe() string { return "animal " + a.name }

func (a animal) Sound() string { return "..." }

type dog struct {
	animal
	breed string
}

// Sound shadows the promoted animal.Sound.
func (d dog) Sound() string { return "woof" }

type speaker interface {
	Describe() string
	Sound() string
}

// EmbeddingPromotion shows method promotion and shadowing through struct
// embedding, Go's answer to implementation inheritance.
type EmbeddingPromotion struct{ out io.Writer }

func (l *EmbeddingPromotion) Run(context.Context) error {
	d := dog{animal: animal{name: "rex"}, breed: "collie"}

	fmt.Fprintf(l.out, "d.Describe() promoted: %s\n", d.Describe())
	fmt.Fprintf(l.out, "d.Sound() shadowed: %s\n", d.Sound())
	fmt.Fprintf(l.out, "d.animal.Sound() explicit: %s\n", d.animal.Sound())

	// No virtual dispatch from the embedded type back to the outer one.
	var s speaker = d
	fmt.Fprintf(l.out, "through interface: %s says %s\n", s.Describe(), s.Sound())
	return nil
}

type reader struct{}

func (reader) Close() string { return "reader closed" }

type writer struct{}

func (writer) Close() string { return "writer closed" }

type readWriter struct {
	reader
	writer
}

// Close resolves the selector that embedding both types made ambiguous.
func (rw readWriter) Close() string {
	return rw.reader.Close() + ", " + rw.writer.Close()
}

// AmbiguousSelector is the diamond problem in Go terms: two embedded types
// at the same depth with the same method make the promoted selector
// ambiguous until the outer type defines its own.
type AmbiguousSelector struct{ out io.Writer }

func (l *AmbiguousSelector) Run(context.Context) error {
	rw := readWriter{}
	fmt.Fprintf(l.out, "rw.Close(): %s\n", rw.Close())
	fmt.Fprintf(l.out, "rw.reader.Close(): %s\n", rw.reader.Close())
	return nil
}

// NilInterfacePitfall shows that an interface holding a typed nil pointer
// is not itself nil.
type NilInterfacePitfall struct{ out io.Writer }

func (l *NilInterfacePitfall) Run(context.Context) error {
	var pathErr *os.PathError

	var err error = pathErr
	fmt.Fprintf(l.out, "pathErr == nil: %t\n", pathErr == nil)
	fmt.Fprintf(l.out, "err == nil: %t (type %T)\n", err == nil, err)

	var target *os.PathError
	fmt.Fprintf(l.out, "errors.As still matches the type: %t\n", errors.As(err, &target))

	err = nil
	fmt.Fprintf(l.out, "after err = nil: %t\n", err == nil)
	return nil
}
