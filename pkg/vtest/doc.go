// Package vtest provides fluent assertions for rendered UI fragments.
//
// # Quick Start
//
//	func TestNavLink(t *testing.T) {
//	    f := vtest.ShouldRender(t, NavLink("/home", "Home"))
//	    f.HaveTag("a").
//	        And.HaveHref("/home").
//	        And.HaveRel("noopener", "external links must not leak the opener").
//	        And.HaveChildMarkup(`Home`)
//	}
//
// Every check takes an optional because-clause: a format string followed
// by its arguments. It is inserted into the failure message:
//
//	Expected element to have class "active" because the route is current,
//	but found classes [nav, link].
//
// # Subjects
//
// Should asserts on a *dom.Node, ShouldFragment on a *dom.Fragment and
// ShouldRender renders a *vdom.VNode first. Element checks on a fragment
// act on its first element; a fragment with only text or comments fails
// them with "to have a root element".
//
// # Failures
//
// Each check reports at most one failure. By default the failure is sent
// to t.Errorf and the test stops with t.FailNow. Soft() lets the test
// continue; an assertion.Scope collects failures of several checks and
// reports them together:
//
//	s := assertion.NewScope(t)
//	defer s.Close()
//	vtest.Should(s, link).HaveHref("/home")
//	vtest.Should(s, link).HaveTarget("_blank")
//
// # Markup Checks
//
// HaveMarkup and HaveChildMarkup compare structurally with the configured
// markup.Comparator (markup.New() by default), so attribute order, class
// order and insignificant whitespace do not matter.
//
// # Configuration
//
// OptionsFromConfig builds options from the nearest vassert.yaml.
package vtest
