package dom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	verrors "github.com/vango-dev/vassert/internal/errors"
	"github.com/vango-dev/vassert/pkg/render"
	"github.com/vango-dev/vassert/pkg/vdom"
)

// ErrNoRootElement is returned by AsElement when a fragment holds no element.
var ErrNoRootElement = errors.New("no root element of component found")

// Fragment is the parsed output of a render: zero or more top-level nodes.
type Fragment struct {
	root   *html.Node
	markup string
}

// ParseFragment parses markup as the content of a <body> element.
func ParseFragment(markup string) (*Fragment, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, verrors.New("VA010").Wrap(err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Fragment{root: root, markup: markup}, nil
}

// MustParseFragment is like ParseFragment but panics on error.
// It is meant for fixtures in tests.
func MustParseFragment(markup string) *Fragment {
	f, err := ParseFragment(markup)
	if err != nil {
		panic(err)
	}
	return f
}

// FromVNode renders v and parses the result.
func FromVNode(v *vdom.VNode) (*Fragment, error) {
	markup, err := render.RenderToString(v)
	if err != nil {
		return nil, err
	}
	return ParseFragment(markup)
}

// Markup returns the markup the fragment was parsed from.
func (f *Fragment) Markup() string {
	return f.markup
}

// Nodes returns the top-level nodes.
func (f *Fragment) Nodes() []*Node {
	var out []*Node
	for c := f.root.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, &Node{n: c})
	}
	return out
}

// AsElement returns the first element of the fragment in document order.
// The error wraps ErrNoRootElement when the fragment contains only text,
// comments or nothing.
func (f *Fragment) AsElement() (*Node, error) {
	if el := firstElement(f.root); el != nil {
		return &Node{n: el}, nil
	}
	return nil, verrors.New("VA001").Wrap(ErrNoRootElement)
}

func firstElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
		if el := firstElement(c); el != nil {
			return el
		}
	}
	return nil
}

// Find returns the first element matching selector.
func (f *Fragment) Find(selector string) (*Node, error) {
	return find(f.root, selector)
}

// FindAll returns every element matching selector. No match is not an error.
func (f *Fragment) FindAll(selector string) ([]*Node, error) {
	return findAll(f.root, selector)
}

// FindByDataTestID returns the element whose data-test-id equals id.
func (f *Fragment) FindByDataTestID(id string) (*Node, error) {
	return f.Find(attrSelector("data-test-id", id))
}

// FindByDataTestClass returns the first element whose data-test-class
// equals class.
func (f *Fragment) FindByDataTestClass(class string) (*Node, error) {
	return f.Find(attrSelector("data-test-class", class))
}

// FindAllByDataTestClass returns every element whose data-test-class equals
// class.
func (f *Fragment) FindAllByDataTestClass(class string) ([]*Node, error) {
	return f.FindAll(attrSelector("data-test-class", class))
}
