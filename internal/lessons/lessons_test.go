package lessons

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/conneroisu/playground/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range All(&bytes.Buffer{}) {
		name := runner.NameOf(l)
		assert.False(t, seen[name], "duplicate lesson name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 16)
}

func TestAllLessonsRun(t *testing.T) {
	for _, l := range All(&bytes.Buffer{}) {
		t.Run(runner.NameOf(l), func(t *testing.T) {
			err := l.Run(context.Background())
			if _, ok := l.(*ErrorPropagation); ok {
				assert.ErrorIs(t, err, ErrOutOfStock)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFilter(t *testing.T) {
	all := All(&bytes.Buffer{})

	names := func(ls []runner.Lesson) []string {
		out := make([]string, len(ls))
		for i, l := range ls {
			out[i] = runner.NameOf(l)
		}
		return out
	}

	assert.Len(t, Filter(all, nil, nil), len(all))
	assert.Equal(t, []string{"OperatorMethods", "FalseSharing"},
		names(Filter(all, []string{"FalseSharing", "OperatorMethods"}, nil)))

	withoutErrors := Filter(all, nil, []string{"ErrorPropagation"})
	assert.Len(t, withoutErrors, len(all)-1)
	assert.NotContains(t, names(withoutErrors), "ErrorPropagation")

	assert.Empty(t, Filter(all, []string{"Unknown"}, nil))
}

func TestOperatorMethods(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&OperatorMethods{out: &buf}).Run(context.Background()))

	assert.Contains(t, buf.String(), "a.Add(b)=(4, 6)")
	assert.Contains(t, buf.String(), "a == Vector{1, 2}: true")
	assert.Contains(t, buf.String(), "counts[a]=2")
}

func TestEmbedding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&EmbeddingPromotion{out: &buf}).Run(context.Background()))
	require.NoError(t, (&AmbiguousSelector{out: &buf}).Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "d.Sound() shadowed: woof")
	assert.Contains(t, out, "d.animal.Sound() explicit: ...")
	assert.Contains(t, out, "rw.Close(): reader closed, writer closed")
}

func TestNilInterfacePitfall(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&NilInterfacePitfall{out: &buf}).Run(context.Background()))

	assert.Contains(t, buf.String(), "pathErr == nil: true")
	assert.Contains(t, buf.String(), "err == nil: false")
}

func TestDeferCleanupOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&DeferCleanup{out: &buf}).Run(context.Background()))

	assert.Equal(t, strings.Join([]string{
		"acquire first",
		"acquire second",
		"using both",
		"release second",
		"release first",
		"loop done",
		"deferred i=2",
		"deferred i=1",
		"deferred i=0",
	}, "\n")+"\n", buf.String())
}

func TestPackageStateOnce(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PackageStateOnce{out: &buf}).Run(context.Background()))
	require.NoError(t, (&PackageStateOnce{out: &buf}).Run(context.Background()))

	assert.Equal(t, 1, configLoads)
	assert.Contains(t, buf.String(), "mode=demo loads=1")
}

func TestSliceAliasing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&SliceAliasing{out: &buf}).Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "write through alias: base=[42 0 0]")
	assert.Contains(t, out, "append within capacity shares: base=[42 7 0] grown=[42 7 0 4]")
	assert.Contains(t, out, "append past capacity copies: grown=[42 7 0 4] moved=[42 7 9 4 5]")
}

func TestStack(t *testing.T) {
	var s Stack[string]
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push("a")
	s.Push("b")
	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, s.Len())
}

func TestConstraintPolicies(t *testing.T) {
	assert.Equal(t, "POLICY BASED", render(upperPolicy{}, "policy", "based"))
	assert.Equal(t, "[a] [b]", render(bracketPolicy{}, "a", "b"))
	assert.Equal(t, 9, maxOf(3, 9, 4))
	assert.Equal(t, "zucchini", maxOf("pear", "apple", "zucchini"))
}

func TestPanicRecovery(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PanicRecovery{out: &buf}).Run(context.Background()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out,
		"step1 constructed\nstep2 constructed\nstep2 released\nstep1 released\n"), out)
	assert.Contains(t, out, "pipeline aborted: runtime error: index out of range")
	assert.Contains(t, out, `typed error: func=Atoi input="forty-two"`)
}

func TestErrorPropagation(t *testing.T) {
	var buf bytes.Buffer
	err := (&ErrorPropagation{out: &buf}).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfStock))
	assert.Equal(t, "checkout: reserve 5 x pear: out of stock", err.Error())
}

func TestCustomComparator(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CustomComparator{out: &buf}).Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "Ken")
	assert.Contains(t, lines[1], "Linus")
	assert.Contains(t, lines[2], "Ada")
	assert.Contains(t, lines[3], "Grace")
	assert.Contains(t, lines[4], "Barbara")
	assert.Contains(t, buf.String(), "binary search Grace: index=3 found=true")
	assert.Contains(t, buf.String(), "first oldest: Ken")
}

func TestFalseSharingCounts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&FalseSharing{out: &buf, iterations: 1000}).Run(context.Background()))

	assert.Contains(t, buf.String(), "packed: 4,000 increments")
	assert.Contains(t, buf.String(), "padded: 4,000 increments")
}

func TestBranchPredictionSumsMatch(t *testing.T) {
	data := []int{1, 200, 130, 5, 255}
	assert.Equal(t, 585, sumAbove(data, 128))

	var buf bytes.Buffer
	require.NoError(t, (&BranchPrediction{out: &buf, size: 2048}).Run(context.Background()))
	assert.Contains(t, buf.String(), "elements: 2,048")
}

func TestParallelSum(t *testing.T) {
	data := sequence(10_000)
	want := 10_000 * 9_999 / 2

	sum, err := parallelSum(context.Background(), data, 1_000)
	require.NoError(t, err)
	assert.Equal(t, want, sum)

	sum, err = parallelSum(context.Background(), data, len(data)+1)
	require.NoError(t, err)
	assert.Equal(t, want, sum)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = parallelSum(ctx, data, 1_000)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAsyncLessons(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&AsyncSequential{out: &buf, size: 100}).Run(context.Background()))
	require.NoError(t, (&AsyncConcurrent{out: &buf, size: 100, threshold: 10}).Run(context.Background()))

	assert.Equal(t, 2, strings.Count(buf.String(), "Sum of array: 4950"))
	assert.Contains(t, buf.String(), "futures resolved: [0 1 4 9 16]")
}
