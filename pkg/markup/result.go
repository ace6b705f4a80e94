package markup

// Outcome is the verdict of a structural comparison.
type Outcome int

const (
	NoMatch Outcome = iota
	Match
)

// String returns "match" or "no match".
func (o Outcome) String() string {
	if o == Match {
		return "match"
	}
	return "no match"
}

// Result is returned by a Comparator. Diff explains a NoMatch and is meant
// for humans; callers decide on Outcome alone.
type Result struct {
	Outcome Outcome
	Diff    string
}

// Matched reports whether the outcome is Match.
func (r Result) Matched() bool {
	return r.Outcome == Match
}

// Matched returns a Match result.
func Matched() Result {
	return Result{Outcome: Match}
}

// Mismatch returns a NoMatch result carrying diff.
func Mismatch(diff string) Result {
	return Result{Outcome: NoMatch, Diff: diff}
}

// Comparator decides whether actual markup is structurally equivalent to
// expected markup.
type Comparator interface {
	Compare(actual, expected string) Result
}

// ComparatorFunc adapts a function to Comparator.
type ComparatorFunc func(actual, expected string) Result

// Compare calls f.
func (f ComparatorFunc) Compare(actual, expected string) Result {
	return f(actual, expected)
}

// FromErrorFunc adapts a comparison that signals a mismatch by returning an
// error. A nil error is a Match; any error is a NoMatch whose Diff is the
// error text.
func FromErrorFunc(fn func(actual, expected string) error) Comparator {
	return ComparatorFunc(func(actual, expected string) Result {
		if err := fn(actual, expected); err != nil {
			return Mismatch(err.Error())
		}
		return Matched()
	})
}
