package organizer

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

// recorder collects the order in which behaviors ran.
type recorder struct {
	calls []string
}

func (r *recorder) fn(name string) func(context.Context) error {
	return func(context.Context) error {
		r.calls = append(r.calls, name)
		return nil
	}
}

func newScenario(t *testing.T) (*Organizer, *recorder, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	rec := &recorder{}
	org := New(WithOutput(&out), WithSequence(&runner.Sequence{}))
	org.Builder().
		Add("Alpha", rec.fn("Alpha")).
		Add("Beta", rec.fn("Beta")).
		Add("Gamma", rec.fn("Gamma"))
	return org, rec, &out
}

func TestRunAllInIDOrder(t *testing.T) {
	org, rec, _ := newScenario(t)

	report := org.RunAll(context.Background())

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, rec.calls)
	require.Len(t, report, 3)
	assert.True(t, report.OK())
}

func TestRunByNamesCallerOrder(t *testing.T) {
	org, rec, _ := newScenario(t)

	report := org.RunByNames(context.Background(), "Gamma", "Missing", "Alpha")

	assert.Equal(t, []string{"Gamma", "Alpha"}, rec.calls)
	require.Len(t, report, 2)
	assert.Equal(t, 2, report[0].ID)
	assert.Equal(t, 0, report[1].ID)
}

func TestRunByIDsCallerOrder(t *testing.T) {
	org, rec, _ := newScenario(t)

	org.RunByIDs(context.Background(), 1, 42, 0, 1)

	assert.Equal(t, []string{"Beta", "Alpha", "Beta"}, rec.calls)
}

func TestLookups(t *testing.T) {
	org, _, _ := newScenario(t)

	assert.Equal(t, 1, org.IDByName("Beta"))
	assert.Equal(t, -1, org.IDByName("Missing"))
	assert.Equal(t, "Gamma", org.NameByID(2))
	assert.Equal(t, "", org.NameByID(5))

	_, ok := org.Builder().Registry().FindByID(5)
	assert.False(t, ok)
}

func TestFailureIsolation(t *testing.T) {
	var out bytes.Buffer
	org := New(WithOutput(&out), WithSequence(&runner.Sequence{}))

	ranB := false
	org.Builder().
		Add("A", func(context.Context) error { return errors.New("A broke") }).
		Add("P", func(context.Context) error { panic("not an error") }).
		Add("B", func(context.Context) error {
			ranB = true
			return nil
		})

	report := org.RunAll(context.Background())

	assert.True(t, ranB)
	require.Len(t, report, 3)
	assert.Len(t, report.Failed(), 2)
	assert.True(t, report[2].OK())
	assert.Contains(t, out.String(), "Code[0]:A failed to execute!\nException message:\nA broke")
	assert.Contains(t, out.String(), "Code[1]:P failed to execute!\nUnhandled Exception occured!")
	assert.Contains(t, out.String(), "__END__  2: B completed in")

	snap := org.Metrics().Snapshot()
	assert.Equal(t, int64(3), snap.TotalRuns)
	assert.Equal(t, int64(1), snap.Succeeded)
}

func TestPrintDetailsIdempotent(t *testing.T) {
	org, rec, out := newScenario(t)

	org.PrintDetails()
	first := out.String()
	out.Reset()
	org.PrintDetails()

	assert.Equal(t, first, out.String())
	assert.Equal(t, "available items:\n00-name: Alpha\n01-name: Beta\n02-name: Gamma\n", first)
	assert.Empty(t, rec.calls)
}

func TestDetails(t *testing.T) {
	org, _, _ := newScenario(t)

	assert.Equal(t, []Detail{
		{ID: 0, Name: "Alpha"},
		{ID: 1, Name: "Beta"},
		{ID: 2, Name: "Gamma"},
	}, org.Details())
}

func TestCancelledContextStopsDispatch(t *testing.T) {
	org, rec, _ := newScenario(t)

	ctx, cancel := context.WithCancel(context.Background())
	org.Builder().Add("Canceller", func(context.Context) error {
		cancel()
		return nil
	})
	org.Builder().Add("After", rec.fn("After"))

	report := org.RunByNames(ctx, "Canceller", "After")

	assert.Len(t, report, 1)
	assert.NotContains(t, rec.calls, "After")
}

func TestIDsContinueAcrossBuilders(t *testing.T) {
	seq := &runner.Sequence{}

	first := New(WithOutput(nil), WithSequence(seq))
	first.Builder().Add("a", nil).Add("b", nil)

	second := New(WithOutput(nil), WithSequence(seq))
	second.Builder().Add("c", nil)

	assert.Equal(t, 2, second.IDByName("c"))
	assert.Equal(t, -1, second.IDByName("a"))
}

func TestBuilderAddLesson(t *testing.T) {
	org := New(WithOutput(nil), WithSequence(&runner.Sequence{}))

	org.Builder().AddLessons(&sampleLesson{}, namedSample{})

	assert.Equal(t, 0, org.IDByName("sampleLesson"))
	assert.Equal(t, 1, org.IDByName("Named Sample"))
}

func TestBuilderPanicsOnDuplicateID(t *testing.T) {
	b := NewBuilder(&runner.Sequence{})
	b.Add("first", nil)

	// A second builder sharing the registry but restarting the sequence
	// produces a colliding id.
	clash := &Builder{seq: &runner.Sequence{}, registry: b.registry}

	assert.Panics(t, func() {
		clash.Add("second", nil)
	})
	assert.Equal(t, 1, b.Registry().Count())
}

func TestReportSummary(t *testing.T) {
	org, _, _ := newScenario(t)
	report := org.RunAll(context.Background())

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Alpha")
	assert.Contains(t, lines[1], "succeeded")
	assert.True(t, strings.HasPrefix(lines[4], "3 run, 0 failed"))
}

type sampleLesson struct{}

func (*sampleLesson) Run(context.Context) error { return nil }

type namedSample struct{}

func (namedSample) Name() string { return "Named Sample" }

func (namedSample) Run(context.Context) error { return nil }
