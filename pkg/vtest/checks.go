package vtest

import (
	"strings"

	"github.com/vango-dev/vassert/pkg/assertion"
	"github.com/vango-dev/vassert/pkg/dom"
	"github.com/vango-dev/vassert/pkg/render"
	"github.com/vango-dev/vassert/pkg/vdom"
)

// HaveTag asserts that the element's local name is expected.
func (a *Assertions[S]) HaveTag(expected string, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("HaveTag", because, func(c *assertion.Chain) {
		el := a.element(c)
		el.Check(func(n *dom.Node) bool { return n.LocalName() == expected }).
			FailWith("Expected {context:element} {0} to be {1}{reason}, but found {2}.",
				"tag", expected, assertion.Lazy(func() any { return current(el).LocalName() }))
	})
}

// HaveClass asserts that expected is one of the element's class tokens.
func (a *Assertions[S]) HaveClass(expected string, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("HaveClass", because, func(c *assertion.Chain) {
		el := a.element(c)
		el.Check(func(n *dom.Node) bool { return len(n.ClassList()) > 0 }).
			FailWith("Expected {context:element} to have class {0}{reason}, but found no classes.", expected).
			Then().
			Check(func(n *dom.Node) bool { return n.HasClass(expected) }).
			FailWith("Expected {context:element} to have class {0}{reason}, but found classes [{1}].",
				expected, joined(func() []string { return current(el).ClassList() }))
	})
}

// NotHaveClass asserts that expected is not one of the element's class
// tokens.
func (a *Assertions[S]) NotHaveClass(unexpected string, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("NotHaveClass", because, func(c *assertion.Chain) {
		a.element(c).
			Check(func(n *dom.Node) bool { return !n.HasClass(unexpected) }).
			FailWith("Expected {context:element} to not have class {0}{reason}, but found it.", unexpected)
	})
}

// HaveAttribute asserts that the element has the attribute name with the
// given value.
func (a *Assertions[S]) HaveAttribute(name, value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveAttribute", name, value, because)
}

// HaveAltText asserts the alt attribute.
func (a *Assertions[S]) HaveAltText(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveAltText", "alt", value, because)
}

// HaveAriaLabel asserts the aria-label attribute.
func (a *Assertions[S]) HaveAriaLabel(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveAriaLabel", "aria-label", value, because)
}

// HaveDataTestClass asserts the data-test-class attribute.
func (a *Assertions[S]) HaveDataTestClass(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveDataTestClass", "data-test-class", value, because)
}

// HaveDataTestID asserts the data-test-id attribute.
func (a *Assertions[S]) HaveDataTestID(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveDataTestID", "data-test-id", value, because)
}

// HaveHref asserts the href attribute.
func (a *Assertions[S]) HaveHref(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveHref", "href", value, because)
}

// HaveID asserts the id attribute.
func (a *Assertions[S]) HaveID(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveID", "id", value, because)
}

// HaveSrc asserts the src attribute.
func (a *Assertions[S]) HaveSrc(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveSrc", "src", value, because)
}

// HaveTarget asserts the target attribute.
func (a *Assertions[S]) HaveTarget(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveTarget", "target", value, because)
}

// HaveTitle asserts the title attribute.
func (a *Assertions[S]) HaveTitle(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveTitle", "title", value, because)
}

// HaveType asserts the type attribute.
func (a *Assertions[S]) HaveType(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveType", "type", value, because)
}

// HaveRole asserts the role attribute.
func (a *Assertions[S]) HaveRole(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveRole", "role", value, because)
}

// HaveName asserts the name attribute.
func (a *Assertions[S]) HaveName(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveName", "name", value, because)
}

// HaveValue asserts the value attribute.
func (a *Assertions[S]) HaveValue(value string, because ...any) AndConstraint[*Assertions[S]] {
	return a.haveAttribute("HaveValue", "value", value, because)
}

func (a *Assertions[S]) haveAttribute(check, name, value string, because []any) AndConstraint[*Assertions[S]] {
	return a.run(check, because, func(c *assertion.Chain) {
		el := a.hasAttribute(c, name)
		actual := assertion.Select(el, func(n *dom.Node) string {
			v, _ := n.Attribute(name)
			return v
		})
		actual.Check(func(v string) bool { return v == value }).
			FailWith("Expected {context:element} {0} attribute to have value {1}{reason}, but found {2}.",
				name, value, assertion.Lazy(func() any { return current(actual) }))
	})
}

// hasAttribute is the presence step shared by attribute checks.
func (a *Assertions[S]) hasAttribute(c *assertion.Chain, name string) *assertion.Selector[*dom.Node] {
	return a.element(c).
		Check(func(n *dom.Node) bool {
			_, ok := n.Attribute(name)
			return ok
		}).
		FailWith("Expected {context:element} to have attribute {0}{reason}, but found <null>.", name).
		Then()
}

// HaveRel asserts that token is one of the space-separated tokens of the
// rel attribute.
func (a *Assertions[S]) HaveRel(token string, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("HaveRel", because, func(c *assertion.Chain) {
		tokens := assertion.Select(a.hasAttribute(c, "rel"), func(n *dom.Node) []string {
			v, _ := n.Attribute("rel")
			return strings.Fields(v)
		})
		tokens.Check(func(ts []string) bool { return contains(ts, token) }).
			FailWith("Expected {context:element} {0} [{1}] to contain {2}{reason}.",
				"rel", joined(func() []string { return current(tokens) }), token)
	})
}

// HaveMarkup asserts that the subject is structurally equivalent to
// expected. For a fragment the whole fragment is compared; for an element
// its outer markup.
func (a *Assertions[S]) HaveMarkup(expected string, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("HaveMarkup", because, func(c *assertion.Chain) {
		a.haveMarkup(c, expected)
	})
}

// HaveMarkupNode is HaveMarkup with the expectation given as a node.
func (a *Assertions[S]) HaveMarkupNode(expected *vdom.VNode, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("HaveMarkup", because, func(c *assertion.Chain) {
		if want, ok := renderExpected(c, expected); ok {
			a.haveMarkup(c, want)
		}
	})
}

func (a *Assertions[S]) haveMarkup(c *assertion.Chain, expected string) {
	actual := a.markupOf(c)
	actual.Check(func(m string) bool { return a.matches(m, expected) }).
		FailWith("Expected {context:element} markup {0}{reason}, but found {1}.",
			expected, assertion.Lazy(func() any { return assertion.Raw(current(actual)) }))
}

func (a *Assertions[S]) markupOf(c *assertion.Chain) *assertion.Selector[string] {
	if f, ok := any(a.Subject).(*dom.Fragment); ok && f != nil {
		return assertion.Given(c, f.Markup)
	}
	return assertion.Select(a.element(c), (*dom.Node).Markup)
}

// HaveChildMarkup asserts that the first child node is structurally
// equivalent to expected.
func (a *Assertions[S]) HaveChildMarkup(expected string, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("HaveChildMarkup", because, func(c *assertion.Chain) {
		a.haveChildMarkup(c, expected)
	})
}

// HaveChildMarkupNode is HaveChildMarkup with the expectation given as a
// node.
func (a *Assertions[S]) HaveChildMarkupNode(expected *vdom.VNode, because ...any) AndConstraint[*Assertions[S]] {
	return a.run("HaveChildMarkup", because, func(c *assertion.Chain) {
		if want, ok := renderExpected(c, expected); ok {
			a.haveChildMarkup(c, want)
		}
	})
}

func (a *Assertions[S]) haveChildMarkup(c *assertion.Chain, expected string) {
	child := assertion.Select(a.element(c), (*dom.Node).FirstChild)
	child.Check(func(n *dom.Node) bool { return n != nil }).
		FailWith("Expected {context:element} to have child {0}{reason}, but found <null>.", expected).
		Then().
		Check(func(n *dom.Node) bool { return a.matches(n.Markup(), expected) }).
		FailWith("Expected {context:element} to have child {0}{reason}, but found {1}.",
			expected, assertion.Lazy(func() any {
				return assertion.Raw(strings.TrimLeft(current(child).Markup(), " \t\r\n"))
			}))
}

func (a *Assertions[S]) matches(actual, expected string) bool {
	return a.settings.comparator.Compare(actual, expected).Matched()
}

// renderExpected renders an expectation node, failing c when it cannot be
// rendered.
func renderExpected(c *assertion.Chain, v *vdom.VNode) (string, bool) {
	html, err := render.RenderToString(v)
	c.ForCondition(err == nil).
		FailWith("Expected {context:element} to be compared with a renderable node{reason}, but found error {0}.", err)
	return html, err == nil
}

// joined renders a token list as a bare comma-separated message argument.
func joined(tokens func() []string) assertion.Lazy {
	return func() any {
		return assertion.Raw(strings.Join(tokens(), ", "))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
