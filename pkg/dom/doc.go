// Package dom exposes parsed markup as inspectable nodes.
//
// A Fragment is the parsed output of a render. Assertions usually start from
// its first element:
//
//	f, err := dom.ParseFragment(`<a class="nav" href="/home">Home</a>`)
//	el, err := f.AsElement()
//	href, ok := el.Attribute("href")
//
// Elements are located with CSS selectors (cascadia), or with the data-test-*
// helpers:
//
//	button, err := f.FindByDataTestID("submit")
//	rows, err := f.FindAllByDataTestClass("row")
//
// Parsing is done by golang.org/x/net/html in <body> context.
package dom
