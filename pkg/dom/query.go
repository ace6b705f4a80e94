package dom

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	verrors "github.com/vango-dev/vassert/internal/errors"
)

// ErrNoMatch is returned by Find when no element matches the selector.
var ErrNoMatch = errors.New("no element matched selector")

func compile(selector string) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, verrors.New("VA003").
			WithDetail(fmt.Sprintf("selector %q", selector)).
			Wrap(err)
	}
	return sel, nil
}

// find returns the first element below root matching selector. root itself
// is never a candidate.
func find(root *html.Node, selector string) (*Node, error) {
	matches, err := findAll(root, selector)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, verrors.New("VA002").
			WithDetail(fmt.Sprintf("selector %q", selector)).
			Wrap(ErrNoMatch)
	}
	return matches[0], nil
}

func findAll(root *html.Node, selector string) ([]*Node, error) {
	sel, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var out []*Node
	for _, m := range sel.MatchAll(root) {
		if m == root {
			continue
		}
		out = append(out, &Node{n: m})
	}
	return out, nil
}

func attrSelector(name, value string) string {
	return "[" + name + "=" + strconv.Quote(value) + "]"
}
