// Package errors provides structured, coded errors for vassert.
//
// Assertion failures are not errors: they travel through an assertion.Reporter
// as rendered messages. This package covers everything else that can go wrong
// around an assertion: a fragment with no root element, a selector that does
// not compile, markup that cannot be parsed, a broken vassert.yaml.
//
// # Error Categories
//
//   - dom: node lookup and selector errors
//   - markup: parse and render errors
//   - config: configuration file errors
//   - cli: command-line usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "VA001") that maps to a short message
// and a detailed explanation in the registry.
//
// # Usage
//
//	err := errors.New("VA003").
//	    WithDetail(`selector "a[" is not valid CSS`).
//	    WithSuggestion("Quote attribute values: a[href='/x']")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR VA003: Invalid selector
//	//
//	//   selector "a[" is not valid CSS
//	//
//	//   Hint: Quote attribute values: a[href='/x']
package errors
