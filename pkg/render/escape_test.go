package render_test

import (
	"errors"
	"testing"

	"github.com/vango-dev/vassert/pkg/assertion"
	"github.com/vango-dev/vassert/pkg/dom"
	"github.com/vango-dev/vassert/pkg/markup"
	"github.com/vango-dev/vassert/pkg/render"
	"github.com/vango-dev/vassert/pkg/vdom"
	"github.com/vango-dev/vassert/pkg/vtest"
)

// Escaped output must parse back to exactly what was put in, otherwise
// attribute and text checks on a rendered fragment would compare against
// mangled values.

func TestEscapedTextSurvivesParse(t *testing.T) {
	tests := []string{
		"Tom & Jerry",
		"a < b > c",
		`say "hello", it's fine`,
		"<script>alert('xss')</script>",
		"&amp; is already an entity",
		"Hello 世界 🌍",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			f, err := dom.FromVNode(vdom.P(vdom.Text(text)))
			if err != nil {
				t.Fatalf("FromVNode: %v", err)
			}
			el, err := f.AsElement()
			if err != nil {
				t.Fatalf("AsElement: %v", err)
			}
			if got := el.Text(); got != text {
				t.Errorf("Text() = %q, want %q", got, text)
			}
			if _, err := f.Find("script"); !errors.Is(err, dom.ErrNoMatch) {
				t.Errorf("escaped text produced an element: err = %v", err)
			}
		})
	}
}

func TestEscapedAttributeSurvivesHaveAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"quotes", `value="test" onclick="alert('x')"`},
		{"ampersand", "/search?a=1&b=2"},
		{"angle brackets", "<b>bold</b>"},
		{"whitespace", "line1\nline2\tcol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &assertion.Recorder{}
			vtest.ShouldRender(nil, vdom.Input(vdom.Attr{Key: "title", Value: tt.value}), vtest.WithReporter(rec)).
				HaveTitle(tt.value).
				And.HaveTag("input")

			if rec.Len() != 0 {
				t.Errorf("failures = %q", rec.Messages())
			}
		})
	}
}

func TestEscapedAttributeWhitespaceIsEncoded(t *testing.T) {
	html, err := render.RenderToString(vdom.Div(vdom.Attr{Key: "title", Value: "a\nb\tc"}))
	if err != nil {
		t.Fatal(err)
	}
	want := `<div title="a&#10;b&#9;c"></div>`
	if html != want {
		t.Errorf("RenderToString = %q, want %q", html, want)
	}
}

func TestEscapedOutputMatchesHandwrittenMarkup(t *testing.T) {
	node := vdom.A(
		vdom.Href("/q?x=1&y=2"),
		vdom.Attr{Key: "title", Value: `a "quoted" title`},
		vdom.Text("1 < 2 & 3 > 2"),
	)
	html, err := render.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}

	expected := `<a title='a "quoted" title' href="/q?x=1&amp;y=2">1 &lt; 2 &amp; 3 &gt; 2</a>`
	if !markup.Matches(html, expected) {
		t.Errorf("rendered %q does not match %q", html, expected)
	}
	if markup.Matches(html, `<a title="a" href="/q?x=1&amp;y=2">1 &lt; 2 &amp; 3 &gt; 2</a>`) {
		t.Error("a truncated attribute value should not match")
	}
}
