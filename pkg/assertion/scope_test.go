package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_CollectsAcrossCalls(t *testing.T) {
	parent := &fakeT{}
	s := NewScope(parent)

	r := NewTestReporter(s)
	New(WithReporter(r)).ForCondition(false).FailWith("first")
	New(WithReporter(r)).ForCondition(true).FailWith("skipped")
	New(WithReporter(r)).ForCondition(false).FailWith("second")

	assert.Empty(t, parent.errors, "nothing reaches the parent before Close")
	assert.Equal(t, []string{"first", "second"}, s.Failures())

	s.Close()
	require.Len(t, parent.errors, 1)
	assert.Equal(t, "first\nsecond", parent.errors[0])
	assert.Equal(t, 1, parent.aborted)

	s.Close()
	assert.Len(t, parent.errors, 1, "second Close is a no-op")
}

func TestScope_ReportAfterCloseReachesParent(t *testing.T) {
	parent := &fakeT{}
	s := NewScope(parent)

	New(WithReporter(s)).ForCondition(false).FailWith("before close")
	s.Close()
	New(WithReporter(s)).ForCondition(false).FailWith("after close")
	s.Close()

	require.Len(t, parent.errors, 2)
	assert.Equal(t, "before close", parent.errors[0])
	assert.Equal(t, "after close", parent.errors[1])
	assert.Equal(t, 2, parent.aborted)
	assert.Equal(t, []string{"before close", "after close"}, s.Failures())
}

func TestScope_SingleChainStillFirstFailureWins(t *testing.T) {
	parent := &fakeT{}
	s := NewScope(parent)

	New(WithReporter(s)).
		ForCondition(false).FailWith("first").
		Then().
		ForCondition(false).FailWith("second")

	assert.Equal(t, []string{"first"}, s.Failures())
}

func TestScope_EmptyCloseReportsNothing(t *testing.T) {
	parent := &fakeT{}
	NewScope(parent).Close()

	assert.Empty(t, parent.errors)
	assert.Zero(t, parent.aborted)
}

func TestScope_Nested(t *testing.T) {
	parent := &fakeT{}
	outer := NewScope(parent)
	inner := NewScope(outer)

	inner.Errorf("inner %d", 1)
	inner.Close()
	outer.Report("outer")
	outer.Close()

	require.Len(t, parent.errors, 1)
	assert.Equal(t, "inner 1\nouter", parent.errors[0])
}
