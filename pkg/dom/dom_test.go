package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verrors "github.com/vango-dev/vassert/internal/errors"
	"github.com/vango-dev/vassert/pkg/vdom"
)

const page = `<nav class="menu main" data-test-id="menu">
  <a class="nav" href="/home" rel="noopener noreferrer" data-test-class="link">Home</a>
  <a class="nav" href="/about" data-test-class="link">About <em>us</em></a>
</nav>`

func TestAsElement(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		wantTag string
		wantErr bool
	}{
		{name: "single element", markup: `<div></div>`, wantTag: "div"},
		{name: "leading text and comment", markup: `hello <!-- c --><span>x</span><p></p>`, wantTag: "span"},
		{name: "upper-case tag", markup: `<SECTION></SECTION>`, wantTag: "section"},
		{name: "text only", markup: `just text`, wantErr: true},
		{name: "comment only", markup: `<!-- nothing -->`, wantErr: true},
		{name: "empty", markup: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFragment(tt.markup)
			require.NoError(t, err)

			el, err := f.AsElement()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNoRootElement))
				assert.Equal(t, "VA001", verrors.Code(err))
				assert.Contains(t, err.Error(), "No root element of component found.")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, el.LocalName())
		})
	}
}

func TestNode_Attributes(t *testing.T) {
	el, err := MustParseFragment(`<a HREF="/x" class=" b  a " alt="">link</a>`).AsElement()
	require.NoError(t, err)

	href, ok := el.Attribute("href")
	assert.True(t, ok)
	assert.Equal(t, "/x", href)

	href, ok = el.Attribute("HREF")
	assert.True(t, ok, "attribute names are case-insensitive")
	assert.Equal(t, "/x", href)

	alt, ok := el.Attribute("alt")
	assert.True(t, ok, "empty attribute is present")
	assert.Empty(t, alt)

	_, ok = el.Attribute("title")
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "a"}, el.ClassList())
	assert.True(t, el.HasClass("a"))
	assert.False(t, el.HasClass("c"))
}

func TestNode_FirstChild(t *testing.T) {
	f := MustParseFragment(`<ul>  <li>one</li></ul><p></p><div><span></span></div>`)
	nodes := f.Nodes()
	require.Len(t, nodes, 3)

	first := nodes[0].FirstChild()
	require.NotNil(t, first)
	assert.False(t, first.IsElement(), "whitespace text is the first child")
	assert.Equal(t, "", first.LocalName())
	assert.Equal(t, "  ", first.Markup())

	assert.Nil(t, nodes[1].FirstChild())

	child := nodes[2].FirstChild()
	require.NotNil(t, child)
	assert.Equal(t, "<span></span>", child.Markup())
	assert.Len(t, nodes[0].Children(), 2)
}

func TestNode_TextAndMarkup(t *testing.T) {
	el, err := MustParseFragment(`<p>Hello <b>world</b> &amp; co</p>`).AsElement()
	require.NoError(t, err)

	assert.Equal(t, "Hello world & co", el.Text())
	assert.Equal(t, "<p>Hello <b>world</b> &amp; co</p>", el.Markup())
	assert.Equal(t, el.Markup(), el.String())

	var missing *Node
	assert.Equal(t, "", missing.Markup())
	assert.Equal(t, "", missing.Text())
	assert.Nil(t, missing.FirstChild())
	assert.False(t, missing.IsElement())
}

func TestFragment_Find(t *testing.T) {
	f := MustParseFragment(page)

	about, err := f.Find(`a[href="/about"]`)
	require.NoError(t, err)
	assert.Equal(t, "About us", about.Text())

	menu, err := f.FindByDataTestID("menu")
	require.NoError(t, err)
	assert.Equal(t, "nav", menu.LocalName())

	link, err := f.FindByDataTestClass("link")
	require.NoError(t, err)
	href, _ := link.Attribute("href")
	assert.Equal(t, "/home", href)

	links, err := f.FindAllByDataTestClass("link")
	require.NoError(t, err)
	assert.Len(t, links, 2)

	none, err := f.FindAll("table")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFragment_FindErrors(t *testing.T) {
	f := MustParseFragment(page)

	_, err := f.Find("table")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatch))
	assert.Equal(t, "VA002", verrors.Code(err))

	_, err = f.Find("a[")
	require.Error(t, err)
	assert.Equal(t, "VA003", verrors.Code(err))

	_, err = f.FindAll("[[")
	assert.Equal(t, "VA003", verrors.Code(err))
}

func TestNode_FindSkipsSelf(t *testing.T) {
	nav, err := MustParseFragment(page).AsElement()
	require.NoError(t, err)

	_, err = nav.Find("nav")
	assert.True(t, errors.Is(err, ErrNoMatch))

	em, err := nav.Find("a em")
	require.NoError(t, err)
	assert.Equal(t, "us", em.Text())

	all, err := nav.FindAll(".nav")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindByDataTestID_QuotesValue(t *testing.T) {
	f := MustParseFragment(`<div data-test-id="it's &quot;odd&quot;"></div>`)
	el, err := f.FindByDataTestID(`it's "odd"`)
	require.NoError(t, err)
	assert.Equal(t, "div", el.LocalName())
}

func TestFromVNode(t *testing.T) {
	f, err := FromVNode(vdom.A(vdom.Href("/home"), vdom.Rel("noopener"), vdom.Text("Home")))
	require.NoError(t, err)

	assert.Equal(t, `<a href="/home" rel="noopener">Home</a>`, f.Markup())
	el, err := f.AsElement()
	require.NoError(t, err)
	assert.Equal(t, "a", el.LocalName())

	_, err = FromVNode(&vdom.VNode{Kind: vdom.VKind(77)})
	require.Error(t, err)
	assert.Equal(t, "VA011", verrors.Code(err))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))
	el, _ := MustParseFragment(`<i></i>`).AsElement()
	assert.Same(t, el.HTML(), Wrap(el.HTML()).HTML())
}
