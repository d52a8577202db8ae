// Package lessons contains the demo programs registered with the harness.
//
// Each lesson is a small, self-contained program about one Go language or
// runtime behavior. Lessons write their output to the writer they were
// created with and return an error only when the demonstration itself is
// about failure.
package lessons

import (
	"io"
	"slices"

	"github.com/conneroisu/playground/internal/runner"
)

// All returns the full catalogue in registration order.
func All(w io.Writer) []runner.Lesson {
	return []runner.Lesson{
		// methods and types
		&OperatorMethods{out: w},
		&EmbeddingPromotion{out: w},
		&AmbiguousSelector{out: w},
		&NilInterfacePitfall{out: w},
		// ownership and state
		&DeferCleanup{out: w},
		&PackageStateOnce{out: w},
		&SliceAliasing{out: w},
		// generics
		&GenericContainer{out: w},
		&ConstraintPolicies{out: w},
		// failure semantics
		&PanicRecovery{out: w},
		&ErrorPropagation{out: w},
		// comparators
		&CustomComparator{out: w},
		// cpu architecture
		&FalseSharing{out: w, iterations: 200_000},
		&BranchPrediction{out: w, size: 1 << 16},
		// concurrency
		&AsyncSequential{out: w, size: 10_000},
		&AsyncConcurrent{out: w, size: 10_000, threshold: 1_000},
	}
}

// Filter keeps the lessons named in enabled (all when empty) and drops
// those named in disabled. Order is preserved.
func Filter(lessons []runner.Lesson, enabled, disabled []string) []runner.Lesson {
	kept := make([]runner.Lesson, 0, len(lessons))
	for _, l := range lessons {
		name := runner.NameOf(l)
		if len(enabled) > 0 && !slices.Contains(enabled, name) {
			continue
		}
		if slices.Contains(disabled, name) {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}
