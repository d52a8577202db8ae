//go:build property

package registry

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/conneroisu/playground/internal/runner"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRegistryProperties validates ordering and lookup invariants
func TestRegistryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: ids from one sequence are unique and strictly increasing
	properties.Property("ids are unique and increasing", prop.ForAll(
		func(count int) bool {
			seq := &runner.Sequence{}
			prev := -1
			for i := 0; i < count; i++ {
				u := runner.NewUnit(seq, "u", nil)
				if u.ID() <= prev {
					return false
				}
				prev = u.ID()
			}
			return true
		},
		gen.IntRange(0, 200),
	))

	// Property: iteration order is ascending regardless of insertion order
	properties.Property("All is ordered by id", prop.ForAll(
		func(count int, seed int64) bool {
			order := rand.New(rand.NewSource(seed)).Perm(count)

			r := New()
			for _, id := range order {
				if err := r.Add(stubUnit{id: id, name: fmt.Sprintf("u%d", id)}); err != nil {
					return false
				}
			}

			all := r.All()
			if len(all) != count {
				return false
			}
			for i, u := range all {
				if u.ID() != i {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 100),
		gen.Int64(),
	))

	// Property: FindByID finds exactly the registered ids
	properties.Property("FindByID iff registered", prop.ForAll(
		func(registered []int, probe int) bool {
			r := New()
			want := make(map[int]bool)
			for _, id := range registered {
				if want[id] {
					continue
				}
				want[id] = true
				_ = r.Add(stubUnit{id: id, name: "x"})
			}

			u, ok := r.FindByID(probe)
			if ok != want[probe] {
				return false
			}
			return !ok || u.ID() == probe
		},
		gen.SliceOf(gen.IntRange(0, 50)),
		gen.IntRange(-5, 55),
	))

	// Property: FindByName returns the smallest id among matches
	properties.Property("FindByName returns first match", prop.ForAll(
		func(names []string, probe string) bool {
			r := New()
			expected := -1
			for i, name := range names {
				_ = r.Add(stubUnit{id: i, name: name})
				if name == probe && expected == -1 {
					expected = i
				}
			}

			u, ok := r.FindByName(probe)
			if expected == -1 {
				return !ok
			}
			return ok && u.ID() == expected
		},
		gen.SliceOf(gen.OneConstOf("Alpha", "Beta", "Gamma", "Delta")),
		gen.OneConstOf("Alpha", "Beta", "Gamma", "Delta", "Missing"),
	))

	properties.TestingRun(t)
}
