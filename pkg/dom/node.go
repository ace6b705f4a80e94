package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Node is a parsed node of a rendered fragment: an element, text or comment.
type Node struct {
	n *html.Node
}

// Wrap returns a Node for n, or nil when n is nil.
func Wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

// HTML returns the underlying parser node.
func (n *Node) HTML() *html.Node {
	return n.n
}

// IsElement reports whether n is an element.
func (n *Node) IsElement() bool {
	return n != nil && n.n.Type == html.ElementNode
}

// LocalName returns the lower-case tag name of an element, or "" for any
// other node kind.
func (n *Node) LocalName() string {
	if !n.IsElement() {
		return ""
	}
	return n.n.Data
}

// Attribute returns the value of the named attribute and whether it is
// present. Names are matched case-insensitively.
func (n *Node) Attribute(name string) (string, bool) {
	if !n.IsElement() {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// ClassList returns the whitespace-separated tokens of the class attribute.
func (n *Node) ClassList() []string {
	v, _ := n.Attribute("class")
	return strings.Fields(v)
}

// HasClass reports whether class is one of n's class tokens.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.ClassList() {
		if c == class {
			return true
		}
	}
	return false
}

// FirstChild returns the first child node of any kind, or nil.
func (n *Node) FirstChild() *Node {
	if n == nil {
		return nil
	}
	return Wrap(n.n.FirstChild)
}

// Children returns all child nodes.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, &Node{n: c})
	}
	return out
}

// Text returns the concatenated text content of n and its descendants.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, n.n)
	return b.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// Markup returns the outer HTML of n.
func (n *Node) Markup() string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n.n); err != nil {
		return ""
	}
	return buf.String()
}

// String returns the outer HTML of n.
func (n *Node) String() string {
	return n.Markup()
}

// Find returns the first descendant element matching selector.
func (n *Node) Find(selector string) (*Node, error) {
	return find(n.n, selector)
}

// FindAll returns every descendant element matching selector.
func (n *Node) FindAll(selector string) ([]*Node, error) {
	return findAll(n.n, selector)
}
