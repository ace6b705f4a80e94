package vtest

import (
	"fmt"

	"github.com/vango-dev/vassert/pkg/assertion"
	"github.com/vango-dev/vassert/pkg/dom"
	"github.com/vango-dev/vassert/pkg/middleware"
	"github.com/vango-dev/vassert/pkg/vdom"
)

// Subject is what an assertion surface can be built on.
type Subject interface {
	*dom.Node | *dom.Fragment
}

// Assertions is the assertion surface for an element or a rendered
// fragment. Element checks on a fragment act on its first element.
type Assertions[S Subject] struct {
	// Subject is the value under test.
	Subject S

	t        assertion.TestingT
	reporter assertion.Reporter
	settings settings
	label    string
}

// ElementAssertions asserts on a single element.
type ElementAssertions = Assertions[*dom.Node]

// FragmentAssertions asserts on a rendered fragment.
type FragmentAssertions = Assertions[*dom.Fragment]

// AndConstraint is returned by every check so calls can be chained:
//
//	vtest.Should(t, el).HaveTag("a").And.HaveHref("/home")
type AndConstraint[T any] struct {
	And T
}

// Should starts assertions on an element.
//
// t may be nil when WithReporter is given; without either, a failure
// panics with an *assertion.AssertionError.
func Should(t assertion.TestingT, el *dom.Node, opts ...Option) *ElementAssertions {
	s := newSettings(opts)
	return newAssertions(t, el, s, s.elementLabel)
}

// ShouldFragment starts assertions on a rendered fragment.
func ShouldFragment(t assertion.TestingT, f *dom.Fragment, opts ...Option) *FragmentAssertions {
	s := newSettings(opts)
	return newAssertions(t, f, s, s.fragmentLabel)
}

// ShouldRender renders v and starts assertions on the result. A render
// failure is reported immediately; the returned surface then has no
// subject and every element check fails.
func ShouldRender(t assertion.TestingT, v *vdom.VNode, opts ...Option) *FragmentAssertions {
	if t != nil {
		t.Helper()
	}
	s := newSettings(opts)
	f, err := dom.FromVNode(v)
	a := newAssertions(t, f, s, s.fragmentLabel)
	if err != nil {
		a.run("Render", nil, func(c *assertion.Chain) {
			c.ForCondition(false).
				FailWith("Expected {context:rendered fragment} to render{reason}, but found error {0}.", err)
		})
	}
	return a
}

func newAssertions[S Subject](t assertion.TestingT, subject S, s settings, fallback string) *Assertions[S] {
	label := s.label
	if label == "" {
		label = fallback
	}
	return &Assertions[S]{
		Subject:  subject,
		t:        t,
		reporter: s.reporterFor(t),
		settings: s,
		label:    label,
	}
}

// Label returns the subject label used in messages.
func (a *Assertions[S]) Label() string {
	return a.label
}

// run evaluates one top-level check on a fresh chain. The failure, if
// any, is reported after the middleware stack has seen the result.
func (a *Assertions[S]) run(name string, because []any, body func(c *assertion.Chain)) AndConstraint[*Assertions[S]] {
	if a.t != nil {
		a.t.Helper()
	}

	check := &middleware.Check{Name: name, Label: a.label, Ctx: a.settings.ctx}
	res := middleware.Apply(a.settings.middleware, check, func() middleware.Result {
		reason, args := splitBecause(because)
		c := assertion.New(assertion.WithContext(a.label)).WithReason(reason, args...)
		body(c)
		return middleware.Result{Failed: !c.Succeeded(), Message: c.Failure()}
	})
	if res.Failed {
		a.reporter.Report(res.Message)
	}
	return AndConstraint[*Assertions[S]]{And: a}
}

// splitBecause turns a because-list into a format string and its args.
func splitBecause(because []any) (string, []any) {
	if len(because) == 0 {
		return "", nil
	}
	if format, ok := because[0].(string); ok {
		return format, because[1:]
	}
	return fmt.Sprint(because[0]), because[1:]
}

// element narrows c to the element under test.
func (a *Assertions[S]) element(c *assertion.Chain) *assertion.Selector[*dom.Node] {
	return assertion.Given(c, a.root).
		Check(func(el *dom.Node) bool { return el != nil }).
		FailWith("Expected {context:element} to have a root element{reason}, but found none.").
		Then()
}

func (a *Assertions[S]) root() *dom.Node {
	switch s := any(a.Subject).(type) {
	case *dom.Node:
		return s
	case *dom.Fragment:
		if s == nil {
			return nil
		}
		el, err := s.AsElement()
		if err != nil {
			return nil
		}
		return el
	}
	return nil
}

// current returns the narrowed value of s, or the zero value.
func current[T any](s *assertion.Selector[T]) T {
	v, _ := s.Value().Get()
	return v
}
