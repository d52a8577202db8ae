package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	perrors "github.com/conneroisu/playground/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func newTestBenchmark(buf *bytes.Buffer) *Benchmark {
	b := NewBenchmark(buf, nil, nil)
	b.now = fakeClock(1500 * time.Microsecond)
	return b
}

func TestBenchmarkSuccess(t *testing.T) {
	var buf bytes.Buffer
	b := newTestBenchmark(&buf)

	ran := false
	u := NewUnit(&Sequence{}, "Alpha", func(context.Context) error {
		ran = true
		return nil
	})

	result := u.Execute(context.Background(), b)

	assert.True(t, ran)
	assert.True(t, result.OK())
	assert.Equal(t, OutcomeSucceeded, result.Outcome)
	assert.Nil(t, result.Err)
	assert.Equal(t, 1500*time.Microsecond, result.Duration)
	assert.Equal(t,
		"\n __START__ 0: Alpha is starting execute\n"+
			"\n  __END__  0: Alpha completed in 1.50 msec\n",
		buf.String())
}

func TestBenchmarkReturnedError(t *testing.T) {
	var buf bytes.Buffer
	b := newTestBenchmark(&buf)

	u := NewUnit(&Sequence{}, "Beta", func(context.Context) error {
		return errors.New("vector too long")
	})

	result := b.Execute(context.Background(), u)

	assert.Equal(t, OutcomeFailed, result.Outcome)
	require.NotNil(t, result.Err)
	assert.Equal(t, perrors.ErrorTypeExecution, result.Err.Type)
	assert.Equal(t, "Beta", result.Err.UnitName)
	assert.Contains(t, buf.String(), "\nCode[0]:Beta failed to execute!\nException message:\nvector too long\n")
	assert.NotContains(t, buf.String(), "__END__")
}

func TestBenchmarkPanicWithError(t *testing.T) {
	var buf bytes.Buffer
	b := newTestBenchmark(&buf)

	u := NewUnit(&Sequence{}, "Gamma", func(context.Context) error {
		panic(fmt.Errorf("bad_alloc"))
	})

	result := b.Execute(context.Background(), u)

	assert.Equal(t, OutcomePanicked, result.Outcome)
	assert.True(t, perrors.IsPanic(result.Err))
	assert.False(t, perrors.IsUnhandled(result.Err))
	assert.Contains(t, buf.String(), "Exception message:\nbad_alloc\n")
}

func TestBenchmarkPanicWithNonError(t *testing.T) {
	var buf bytes.Buffer
	b := newTestBenchmark(&buf)

	u := NewUnit(&Sequence{}, "Delta", func(context.Context) error {
		panic(7)
	})

	var result Result
	require.NotPanics(t, func() {
		result = b.Execute(context.Background(), u)
	})

	assert.Equal(t, OutcomePanicked, result.Outcome)
	assert.True(t, perrors.IsUnhandled(result.Err))
	assert.Contains(t, buf.String(), "\nCode[0]:Delta failed to execute!\nUnhandled Exception occured!\n")
}

func TestBenchmarkRecordsMetrics(t *testing.T) {
	var buf bytes.Buffer
	b := newTestBenchmark(&buf)
	seq := &Sequence{}

	b.Execute(context.Background(), NewUnit(seq, "ok", nil))
	b.Execute(context.Background(), NewUnit(seq, "fail", func(context.Context) error { return errors.New("x") }))
	b.Execute(context.Background(), NewUnit(seq, "panic", func(context.Context) error { panic("y") }))

	snap := b.Metrics().Snapshot()
	assert.Equal(t, int64(3), snap.TotalRuns)
	assert.Equal(t, int64(1), snap.Succeeded)
	assert.Equal(t, int64(1), snap.Failed)
	assert.Equal(t, int64(1), snap.Panicked)
	assert.InDelta(t, 66.67, b.Metrics().FailureRate(), 0.01)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "succeeded", OutcomeSucceeded.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "panicked", OutcomePanicked.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
