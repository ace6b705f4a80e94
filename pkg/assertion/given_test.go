package assertion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// presenceThenValue mirrors the shape of an attribute check: presence first,
// then the value behind it.
func presenceThenValue(rec *Recorder, attrs map[string]string, name, want string) (narrowCalls int) {
	c := New(WithReporter(rec), WithContext("element"))
	_, ok := attrs[name]
	k := c.ForCondition(ok).
		FailWith("Expected {context:element} to have attribute {0}{reason}, but found <null>.", name).
		Then()

	Given(k, func() string {
		narrowCalls++
		return attrs[name]
	}).
		Check(func(v string) bool { return v == want }).
		FailWith("Expected {context:element} {0} attribute to have value {1}{reason}, but found {2}.",
			name, want, Lazy(func() any { return attrs[name] }))
	return narrowCalls
}

func TestGiven_AbsentTargetNeverNarrows(t *testing.T) {
	rec := &Recorder{}
	calls := presenceThenValue(rec, map[string]string{}, "href", "/x")

	assert.Zero(t, calls)
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, `Expected element to have attribute "href", but found <null>.`, rec.Messages()[0])
}

func TestGiven_MismatchReportsBothValues(t *testing.T) {
	rec := &Recorder{}
	calls := presenceThenValue(rec, map[string]string{"href": "/y"}, "href", "/x")

	assert.Equal(t, 1, calls)
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, `Expected element "href" attribute to have value "/x", but found "/y".`, rec.Messages()[0])
}

func TestGiven_MatchPasses(t *testing.T) {
	rec := &Recorder{}
	presenceThenValue(rec, map[string]string{"href": "/x"}, "href", "/x")
	assert.Zero(t, rec.Len())
}

func TestSelect(t *testing.T) {
	rec := &Recorder{}
	c := New(WithReporter(rec))

	tokens := Select(Given(c, func() string { return "noopener noreferrer" }), strings.Fields)
	v, ok := tokens.Value().Get()
	require.True(t, ok)
	assert.Equal(t, []string{"noopener", "noreferrer"}, v)

	tokens.
		Check(func(ts []string) bool { return len(ts) == 3 }).
		FailWith("found {0}", Raw(strings.Join(v, ", ")))
	assert.Equal(t, []string{"found noopener, noreferrer"}, rec.Messages())
}

func TestSelect_DeadChainDoesNotRun(t *testing.T) {
	c := New()
	s := Given(c, func() int { return 1 })
	s.ForCondition(false).FailWith("dead")

	called := false
	next := Select(s, func(int) string {
		called = true
		return ""
	})

	assert.False(t, called)
	assert.False(t, next.Value().IsPresent())
	assert.Same(t, c, next.Chain())
}

func TestSelectorContinuation_Then(t *testing.T) {
	rec := &Recorder{}
	s := Given(New(WithReporter(rec)), func() int { return 4 })

	k := s.Check(func(n int) bool { return n > 0 }).FailWith("positive")
	assert.True(t, k.Succeeded())

	k.Then().Check(func(n int) bool { return n%2 == 1 }).FailWith("odd, got {0}", 4)
	assert.Equal(t, []string{"odd, got 4"}, rec.Messages())
}

func TestMaybe(t *testing.T) {
	assert.Equal(t, 3, Some(3).OrElse(0))
	assert.Equal(t, 7, None[int]().OrElse(7))

	doubled := MapMaybe(Some(2), func(n int) int { return n * 2 })
	assert.Equal(t, 4, doubled.OrElse(0))

	calls := 0
	MapMaybe(None[int](), func(n int) int { calls++; return n })
	assert.Zero(t, calls)
}
