package assertion

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestReporter_Aborts(t *testing.T) {
	ft := &fakeT{}
	New(WithReporter(NewTestReporter(ft))).ForCondition(false).FailWith("boom")

	assert.Equal(t, []string{"boom"}, ft.errors)
	assert.Equal(t, 1, ft.aborted)
}

func TestSoftTestReporter_Continues(t *testing.T) {
	ft := &fakeT{}
	r := NewSoftTestReporter(ft)
	New(WithReporter(r)).ForCondition(false).FailWith("one")
	New(WithReporter(r)).ForCondition(false).FailWith("two")

	assert.Equal(t, []string{"one", "two"}, ft.errors)
	assert.Zero(t, ft.aborted)
}

func TestTestReporter_PercentIsNotAFormatVerb(t *testing.T) {
	ft := &fakeT{}
	NewTestReporter(ft).Report("100% wrong")
	assert.Equal(t, []string{"100% wrong"}, ft.errors)
}

func TestReporterFunc(t *testing.T) {
	var got string
	New(WithReporter(ReporterFunc(func(m string) { got = m }))).
		ForCondition(false).
		FailWith("{0}", 1)
	assert.Equal(t, "1", got)
}

func TestRecorder_Err(t *testing.T) {
	rec := &Recorder{}
	require.NoError(t, rec.Err())

	rec.Report("first")
	err := rec.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssertionFailed))
	assert.Equal(t, "assertion failed: first", err.Error())

	rec.Report("second")
	var ae *AssertionError
	require.ErrorAs(t, rec.Err(), &ae)
	assert.Equal(t, []string{"first", "second"}, ae.Failures)
	assert.Equal(t, "assertion failed: 2 failures\n  - first\n  - second", ae.Error())

	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestRecorder_Concurrent(t *testing.T) {
	rec := &Recorder{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			New(WithReporter(rec)).ForCondition(false).FailWith("x")
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, rec.Len())
}

func TestAssertionError_Empty(t *testing.T) {
	assert.Equal(t, "assertion failed", (&AssertionError{}).Error())
}
