package markup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/vango-dev/vassert/pkg/dom"
)

// HTMLComparator compares markup after normalizing both sides:
//
//   - comments are dropped (see WithComments)
//   - whitespace runs in text collapse to one space, whitespace-only text
//     is dropped; <pre> and <textarea> content is kept as is
//   - attributes are sorted, class tokens are sorted (see
//     WithStrictClassOrder) and ignored attributes are removed
//   - boolean attributes written as name="name" equal the bare name
type HTMLComparator struct {
	keepComments     bool
	strictClassOrder bool
	ignored          map[string]struct{}
}

// Option configures an HTMLComparator.
type Option func(*HTMLComparator)

// WithComments makes comments significant.
func WithComments() Option {
	return func(c *HTMLComparator) {
		c.keepComments = true
	}
}

// WithStrictClassOrder makes the order of class tokens significant.
func WithStrictClassOrder() Option {
	return func(c *HTMLComparator) {
		c.strictClassOrder = true
	}
}

// IgnoreAttributes removes the named attributes from both sides before
// comparing.
func IgnoreAttributes(names ...string) Option {
	return func(c *HTMLComparator) {
		for _, n := range names {
			c.ignored[strings.ToLower(n)] = struct{}{}
		}
	}
}

// New creates an HTMLComparator.
func New(opts ...Option) *HTMLComparator {
	c := &HTMLComparator{ignored: make(map[string]struct{})}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultComparator = New()

// Matches reports whether actual and expected are equivalent under the
// default comparator.
func Matches(actual, expected string) bool {
	return defaultComparator.Compare(actual, expected).Matched()
}

// Normalize returns the canonical form of markup under the default
// comparator.
func Normalize(markup string) (string, error) {
	return defaultComparator.Normalize(markup)
}

// Compare implements Comparator. Unparseable input on either side is a
// NoMatch.
func (c *HTMLComparator) Compare(actual, expected string) Result {
	got, err := c.tree(actual)
	if err != nil {
		return Mismatch(fmt.Sprintf("actual: %v", err))
	}
	want, err := c.tree(expected)
	if err != nil {
		return Mismatch(fmt.Sprintf("expected: %v", err))
	}
	if cmp.Equal(want, got) {
		return Matched()
	}
	return Mismatch(cmp.Diff(want, got))
}

// Normalize parses markup and writes it back in canonical form.
func (c *HTMLComparator) Normalize(markup string) (string, error) {
	nodes, err := c.tree(markup)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		n.write(&b)
	}
	return b.String(), nil
}

// node is the normalized form compared with cmp.
type node struct {
	Type     html.NodeType
	Name     string
	Attrs    []attribute
	Text     string
	Children []node
}

type attribute struct {
	Name  string
	Value string
}

func (c *HTMLComparator) tree(markup string) ([]node, error) {
	f, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	var out []node
	for _, n := range f.Nodes() {
		if nn, ok := c.normalize(n.HTML(), false); ok {
			out = append(out, nn)
		}
	}
	return out, nil
}

func (c *HTMLComparator) normalize(n *html.Node, preserve bool) (node, bool) {
	switch n.Type {
	case html.TextNode:
		text := n.Data
		if !preserve {
			text = strings.Join(strings.Fields(text), " ")
		}
		if text == "" {
			return node{}, false
		}
		return node{Type: html.TextNode, Text: text}, true

	case html.CommentNode:
		if !c.keepComments {
			return node{}, false
		}
		return node{Type: html.CommentNode, Text: strings.TrimSpace(n.Data)}, true

	case html.ElementNode:
		out := node{Type: html.ElementNode, Name: n.Data, Attrs: c.attributes(n)}
		keep := preserve || n.Data == "pre" || n.Data == "textarea"
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if nn, ok := c.normalize(ch, keep); ok {
				out.Children = append(out.Children, nn)
			}
		}
		return out, true
	}
	return node{}, false
}

func (c *HTMLComparator) attributes(n *html.Node) []attribute {
	var attrs []attribute
	for _, a := range n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		if _, skip := c.ignored[name]; skip {
			continue
		}
		value := a.Val
		switch {
		case name == "class":
			tokens := strings.Fields(value)
			if !c.strictClassOrder {
				sort.Strings(tokens)
			}
			value = strings.Join(tokens, " ")
		case booleanAttrs[name] && (value == "" || strings.EqualFold(value, name)):
			value = ""
		}
		attrs = append(attrs, attribute{Name: name, Value: value})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

var booleanAttrs = map[string]bool{
	"async": true, "autofocus": true, "autoplay": true, "checked": true,
	"controls": true, "default": true, "defer": true, "disabled": true,
	"hidden": true, "loop": true, "multiple": true, "muted": true,
	"novalidate": true, "open": true, "readonly": true, "required": true,
	"reversed": true, "selected": true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func (n node) write(b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Text))
	case html.CommentNode:
		b.WriteString("<!--" + n.Text + "-->")
	case html.ElementNode:
		b.WriteString("<" + n.Name)
		for _, a := range n.Attrs {
			if a.Value == "" && booleanAttrs[a.Name] {
				b.WriteString(" " + a.Name)
				continue
			}
			fmt.Fprintf(b, ` %s="%s"`, a.Name, html.EscapeString(a.Value))
		}
		b.WriteString(">")
		if voidElements[n.Name] {
			return
		}
		for _, ch := range n.Children {
			ch.write(b)
		}
		b.WriteString("</" + n.Name + ">")
	}
}
