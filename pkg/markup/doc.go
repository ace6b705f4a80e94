// Package markup decides whether two pieces of HTML are structurally
// equivalent.
//
// The boundary is an explicit two-outcome Result rather than an error:
//
//	res := markup.New().Compare(actual, `<a class="b a" href="/">Home</a>`)
//	if !res.Matched() {
//	    fmt.Println(res.Diff)
//	}
//
// Comparators that signal a mismatch through an error are adapted with
// FromErrorFunc. HTMLComparator parses both sides with golang.org/x/net/html,
// normalizes them and compares the trees with go-cmp; Diff is the go-cmp
// report (-expected +actual).
package markup
