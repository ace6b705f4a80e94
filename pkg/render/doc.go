// Package render turns vdom trees into HTML markup, the comparable form used
// by vassert's structural checks.
//
// Output is deterministic: attributes are written in key order, text and
// attribute values are escaped, void elements have no closing tag, and
// boolean attributes are written as a bare name. Event handlers are never
// written.
//
//	html, err := render.RenderToString(node)
//
// Pretty printing is available for failure output:
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(node)
//
// Raw nodes are written verbatim.
package render
