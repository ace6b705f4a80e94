package vtest

import (
	"strings"
	"unicode/utf8"

	"github.com/vango-dev/vassert/pkg/assertion"
	"github.com/vango-dev/vassert/pkg/dom"
	"github.com/vango-dev/vassert/pkg/render"
	"github.com/vango-dev/vassert/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string, or "" if
// the node cannot be rendered.
//
//	html := vtest.RenderToString(Card("Title"))
func RenderToString(node *vdom.VNode) string {
	html, err := render.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that the rendered output contains expected.
// The test continues after a failure.
//
//	vtest.ExpectContains(t, Greeting("Ada"), "Welcome Ada")
func ExpectContains(t assertion.TestingT, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	output(t).
		ForCondition(strings.Contains(html, expected)).
		FailWith("Expected {context} to contain {0}, but found {1}.", expected, assertion.Raw(truncate(html, 500)))
}

// ExpectNotContains asserts that the rendered output does not contain
// unexpected.
//
//	vtest.ExpectNotContains(t, Greeting("Ada"), "Error")
func ExpectNotContains(t assertion.TestingT, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	output(t).
		ForCondition(!strings.Contains(html, unexpected)).
		FailWith("Expected {context} to not contain {0}, but found {1}.", unexpected, assertion.Raw(truncate(html, 500)))
}

// ExpectElement asserts that the rendered output contains an element
// matching the CSS selector.
//
//	vtest.ExpectElement(t, Form(), "button[type=submit]")
func ExpectElement(t assertion.TestingT, node *vdom.VNode, selector string) {
	t.Helper()
	html := RenderToString(node)
	found := false
	if f, err := dom.ParseFragment(html); err == nil {
		matches, err := f.FindAll(selector)
		found = err == nil && len(matches) > 0
	}
	output(t).
		ForCondition(found).
		FailWith("Expected {context} to contain an element matching {0}, but found {1}.", selector, assertion.Raw(truncate(html, 500)))
}

func output(t assertion.TestingT) *assertion.Chain {
	return assertion.New(
		assertion.WithReporter(assertion.NewSoftTestReporter(t)),
		assertion.WithContext("rendered output"),
	)
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}
