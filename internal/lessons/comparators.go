package lessons

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
)

type employee struct {
	Name string
	Dept string
	Age  int
}

// byDeptThenAge orders by department, then age descending, then name.
func byDeptThenAge(a, b employee) int {
	return cmp.Or(
		cmp.Compare(a.Dept, b.Dept),
		cmp.Compare(b.Age, a.Age),
		strings.Compare(a.Name, b.Name),
	)
}

// CustomComparator shows sorting and searching with comparator functions
// instead of a Less method on the element type.
type CustomComparator struct{ out io.Writer }

func (l *CustomComparator) Run(context.Context) error {
	staff := []employee{
		{"Ada", "eng", 36},
		{"Linus", "eng", 54},
		{"Grace", "ops", 45},
		{"Ken", "eng", 54},
		{"Barbara", "ops", 30},
	}

	slices.SortFunc(staff, byDeptThenAge)
	for _, e := range staff {
		fmt.Fprintf(l.out, "%-4s %-8s %d\n", e.Dept, e.Name, e.Age)
	}

	idx, found := slices.BinarySearchFunc(staff, employee{Name: "Grace", Dept: "ops", Age: 45}, byDeptThenAge)
	fmt.Fprintf(l.out, "binary search Grace: index=%d found=%t\n", idx, found)

	oldest := slices.MaxFunc(staff, func(a, b employee) int { return cmp.Compare(a.Age, b.Age) })
	fmt.Fprintf(l.out, "first oldest: %s\n", oldest.Name)
	return nil
}
