package render

// Tags without a closing tag.
var voidElements = set(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
)

// Tags kept on one line in pretty output.
var inlineElements = set(
	"a", "abbr", "b", "br", "cite", "code", "data", "em", "i", "kbd",
	"mark", "q", "s", "samp", "small", "span", "strong", "sub", "sup",
	"time", "u", "var", "wbr",
)

// Attributes rendered as a bare name when true and omitted when false.
var booleanAttrs = set(
	"allowfullscreen", "async", "autofocus", "autoplay", "checked",
	"controls", "default", "defer", "disabled", "formnovalidate", "hidden",
	"ismap", "itemscope", "loop", "multiple", "muted", "nomodule",
	"novalidate", "open", "playsinline", "readonly", "required",
	"reversed", "selected",
)

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func isVoidElement(tag string) bool {
	_, ok := voidElements[tag]
	return ok
}

func isInlineElement(tag string) bool {
	_, ok := inlineElements[tag]
	return ok
}

func isBooleanAttr(name string) bool {
	_, ok := booleanAttrs[name]
	return ok
}
