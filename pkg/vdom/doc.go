// Package vdom provides virtual nodes for building the fragments that vassert
// checks.
//
// VNode represents elements, text, fragments, components and raw HTML.
// Elements are created with variadic factory functions:
//
//	A(Class("nav-link"), Href("/home"), Rel("noopener", "noreferrer"),
//	    Text("Home"),
//	)
//
// Nodes are turned into markup by package render and parsed into
// inspectable nodes by package dom.
package vdom
